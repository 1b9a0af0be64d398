package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Wire structs decode their modeled fields normally and keep every other key
// in Extra. On encode, modeled fields that marshal to null are dropped and the
// Extra keys are merged back, so absent optional fields stay absent.

var fieldKeyCache sync.Map // reflect.Type -> []string

// fieldKeys returns the JSON key of every modeled field of struct type t.
func fieldKeys(t reflect.Type) []string {
	if v, ok := fieldKeyCache.Load(t); ok {
		return v.([]string)
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys = append(keys, name)
	}
	fieldKeyCache.Store(t, keys)
	return keys
}

// decodeWithExtra unmarshals data into v (a pointer to a struct) and returns
// the keys v does not model.
func decodeWithExtra(data []byte, v any) (Extra, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range fieldKeys(reflect.TypeOf(v).Elem()) {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// encodeWithExtra marshals v, drops null fields, and merges extra back in.
func encodeWithExtra(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, val := range fields {
		if string(val) == "null" {
			delete(fields, k)
		}
	}
	for k, val := range extra {
		if _, ok := fields[k]; !ok {
			fields[k] = val
		}
	}
	return json.Marshal(fields)
}

// MarshalJSON writes a list target as an array and a single target as a string.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.IsList {
		if t.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(t.Values)
	}
	if len(t.Values) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(t.Values[0])
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (t *Target) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Target{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*t = Target{Values: values, IsList: true}
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Target{Values: []string{s}}
		return nil
	}
}

func (q *Quest) UnmarshalJSON(data []byte) error {
	type plain Quest
	extra, err := decodeWithExtra(data, (*plain)(q))
	q.Extra = extra
	return err
}

func (q Quest) MarshalJSON() ([]byte, error) {
	type plain Quest
	return encodeWithExtra(plain(q), q.Extra)
}

func (c *QuestConditions) UnmarshalJSON(data []byte) error {
	type plain QuestConditions
	extra, err := decodeWithExtra(data, (*plain)(c))
	c.Extra = extra
	return err
}

func (c QuestConditions) MarshalJSON() ([]byte, error) {
	type plain QuestConditions
	return encodeWithExtra(plain(c), c.Extra)
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	type plain Condition
	extra, err := decodeWithExtra(data, (*plain)(c))
	c.Extra = extra
	return err
}

func (c Condition) MarshalJSON() ([]byte, error) {
	type plain Condition
	return encodeWithExtra(plain(c), c.Extra)
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	type plain Reward
	extra, err := decodeWithExtra(data, (*plain)(r))
	r.Extra = extra
	return err
}

func (r Reward) MarshalJSON() ([]byte, error) {
	type plain Reward
	return encodeWithExtra(plain(r), r.Extra)
}

type counterWire struct {
	ID         string            `json:"id"`
	Conditions []json.RawMessage `json:"conditions"`
}

// UnmarshalJSON decodes the counter and dispatches each leaf on its
// conditionType.
func (c *Counter) UnmarshalJSON(data []byte) error {
	var wire counterWire
	extra, err := decodeWithExtra(data, &wire)
	if err != nil {
		return err
	}
	c.ID = wire.ID
	c.Extra = extra
	c.Conditions = make([]Leaf, 0, len(wire.Conditions))
	for i, raw := range wire.Conditions {
		leaf, err := decodeLeaf(raw)
		if err != nil {
			return fmt.Errorf("counter %s condition %d: %w", wire.ID, i, err)
		}
		c.Conditions = append(c.Conditions, leaf)
	}
	return nil
}

func (c Counter) MarshalJSON() ([]byte, error) {
	conds := c.Conditions
	if conds == nil {
		conds = []Leaf{}
	}
	wire := struct {
		ID         string `json:"id"`
		Conditions []Leaf `json:"conditions"`
	}{ID: c.ID, Conditions: conds}
	return encodeWithExtra(wire, c.Extra)
}

func decodeLeaf(data []byte) (Leaf, error) {
	var head struct {
		ConditionType LeafType `json:"conditionType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var leaf Leaf
	switch head.ConditionType {
	case LeafKills, LeafShots:
		leaf = &KillLeaf{}
	case LeafInZone:
		leaf = &ZoneLeaf{}
	case LeafLocation:
		leaf = &LocationLeaf{}
	case LeafEquipment:
		leaf = &EquipmentLeaf{}
	case LeafHealthEffect:
		leaf = &HealthEffectLeaf{}
	default:
		leaf = &OtherLeaf{}
	}
	if err := json.Unmarshal(data, leaf); err != nil {
		return nil, err
	}
	return leaf, nil
}

func (l *KillLeaf) UnmarshalJSON(data []byte) error {
	type plain KillLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l KillLeaf) MarshalJSON() ([]byte, error) {
	type plain KillLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (l *ZoneLeaf) UnmarshalJSON(data []byte) error {
	type plain ZoneLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l ZoneLeaf) MarshalJSON() ([]byte, error) {
	type plain ZoneLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (l *LocationLeaf) UnmarshalJSON(data []byte) error {
	type plain LocationLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l LocationLeaf) MarshalJSON() ([]byte, error) {
	type plain LocationLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (l *EquipmentLeaf) UnmarshalJSON(data []byte) error {
	type plain EquipmentLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l EquipmentLeaf) MarshalJSON() ([]byte, error) {
	type plain EquipmentLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (l *HealthEffectLeaf) UnmarshalJSON(data []byte) error {
	type plain HealthEffectLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l HealthEffectLeaf) MarshalJSON() ([]byte, error) {
	type plain HealthEffectLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (l *OtherLeaf) UnmarshalJSON(data []byte) error {
	type plain OtherLeaf
	extra, err := decodeWithExtra(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l OtherLeaf) MarshalJSON() ([]byte, error) {
	type plain OtherLeaf
	return encodeWithExtra(plain(l), l.Extra)
}

func (c *QuestConfig) UnmarshalJSON(data []byte) error {
	type plain QuestConfig
	extra, err := decodeWithExtra(data, (*plain)(c))
	c.Extra = extra
	return err
}

func (c QuestConfig) MarshalJSON() ([]byte, error) {
	type plain QuestConfig
	return encodeWithExtra(plain(c), c.Extra)
}

func (t *RepeatableTemplate) UnmarshalJSON(data []byte) error {
	type plain RepeatableTemplate
	extra, err := decodeWithExtra(data, (*plain)(t))
	t.Extra = extra
	return err
}

func (t RepeatableTemplate) MarshalJSON() ([]byte, error) {
	type plain RepeatableTemplate
	return encodeWithExtra(plain(t), t.Extra)
}

func (g *RepeatableGeneration) UnmarshalJSON(data []byte) error {
	type plain RepeatableGeneration
	extra, err := decodeWithExtra(data, (*plain)(g))
	g.Extra = extra
	return err
}

func (g RepeatableGeneration) MarshalJSON() ([]byte, error) {
	type plain RepeatableGeneration
	return encodeWithExtra(plain(g), g.Extra)
}

func (e *ExplorationConfig) UnmarshalJSON(data []byte) error {
	type plain ExplorationConfig
	extra, err := decodeWithExtra(data, (*plain)(e))
	e.Extra = extra
	return err
}

func (e ExplorationConfig) MarshalJSON() ([]byte, error) {
	type plain ExplorationConfig
	return encodeWithExtra(plain(e), e.Extra)
}

func (s *SpecificExits) UnmarshalJSON(data []byte) error {
	type plain SpecificExits
	extra, err := decodeWithExtra(data, (*plain)(s))
	s.Extra = extra
	return err
}

func (s SpecificExits) MarshalJSON() ([]byte, error) {
	type plain SpecificExits
	return encodeWithExtra(plain(s), s.Extra)
}

func (c *CompletionConfig) UnmarshalJSON(data []byte) error {
	type plain CompletionConfig
	extra, err := decodeWithExtra(data, (*plain)(c))
	c.Extra = extra
	return err
}

func (c CompletionConfig) MarshalJSON() ([]byte, error) {
	type plain CompletionConfig
	return encodeWithExtra(plain(c), c.Extra)
}

func (e *EliminationConfig) UnmarshalJSON(data []byte) error {
	type plain EliminationConfig
	extra, err := decodeWithExtra(data, (*plain)(e))
	e.Extra = extra
	return err
}

func (e EliminationConfig) MarshalJSON() ([]byte, error) {
	type plain EliminationConfig
	return encodeWithExtra(plain(e), e.Extra)
}

func (p *ProbabilityObject) UnmarshalJSON(data []byte) error {
	type plain ProbabilityObject
	extra, err := decodeWithExtra(data, (*plain)(p))
	p.Extra = extra
	return err
}

func (p ProbabilityObject) MarshalJSON() ([]byte, error) {
	type plain ProbabilityObject
	return encodeWithExtra(plain(p), p.Extra)
}

func (i *TargetInfo) UnmarshalJSON(data []byte) error {
	type plain TargetInfo
	extra, err := decodeWithExtra(data, (*plain)(i))
	i.Extra = extra
	return err
}

func (i TargetInfo) MarshalJSON() ([]byte, error) {
	type plain TargetInfo
	return encodeWithExtra(plain(i), i.Extra)
}
