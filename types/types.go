// Package types defines the shared data structures for the questtweaks engine:
// the quest tree as it appears in the host database, the repeatable quest
// generation template, and the tweak configuration. Apart from their JSON
// wire form and a few derived predicates, these types carry no logic.
package types

import "encoding/json"

// Condition types used by quest objectives and prerequisites.
const (
	ConditionLevel          = "Level"
	ConditionHandoverItem   = "HandoverItem"
	ConditionFindItem       = "FindItem"
	ConditionCounterCreator = "CounterCreator"
)

// Extra holds JSON keys a wire struct does not model, so that a rewritten
// database keeps them.
type Extra map[string]json.RawMessage

// Target is a condition target. The host stores it either as a single id or
// as a list of ids; IsList records which form was read so it is written back
// the same way.
type Target struct {
	Values []string
	IsList bool
}

// Quest is a single quest record.
type Quest struct {
	ID         string               `json:"_id"`
	Name       string               `json:"QuestName,omitempty"`
	Location   string               `json:"location,omitempty"`
	TraderID   string               `json:"traderId,omitempty"`
	Conditions QuestConditions      `json:"conditions"`
	Rewards    map[string][]*Reward `json:"rewards"`
	Extra      Extra                `json:"-"`
}

// QuestConditions groups the start prerequisites and completion objectives.
type QuestConditions struct {
	AvailableForStart  []*Condition `json:"AvailableForStart"`
	AvailableForFinish []*Condition `json:"AvailableForFinish"`
	Fail               []*Condition `json:"Fail"`
	Extra              Extra        `json:"-"`
}

// Condition is a quest prerequisite or objective, tagged by ConditionType.
type Condition struct {
	ID                   string            `json:"id"`
	ConditionType        string            `json:"conditionType"`
	Index                int               `json:"index"`
	ParentID             string            `json:"parentId"`
	DynamicLocale        bool              `json:"dynamicLocale"`
	GlobalQuestCounterID string            `json:"globalQuestCounterId"`
	VisibilityConditions []json.RawMessage `json:"visibilityConditions"`
	CompareMethod        string            `json:"compareMethod,omitempty"`
	Value                *float64          `json:"value"`
	OnlyFoundInRaid      *bool             `json:"onlyFoundInRaid"`
	Target               Target            `json:"target"`
	AvailableAfter       *int64            `json:"availableAfter"`
	Counter              *Counter          `json:"counter"`
	Extra                Extra             `json:"-"`
}

// Counter is the bundle of leaf predicates owned by a CounterCreator
// objective. All leaves must hold for the objective to progress.
type Counter struct {
	ID         string
	Conditions []Leaf
	Extra      Extra
}

// Reward is one entry of a reward group.
type Reward struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Unknown bool   `json:"unknown"`
	Extra   Extra  `json:"-"`
}

// Item is the subset of an item template the engine reads.
type Item struct {
	ID     string    `json:"_id"`
	Name   string    `json:"_name"`
	Parent string    `json:"_parent"`
	Props  ItemProps `json:"_props"`
}

// ItemProps holds the item template properties the engine reads.
type ItemProps struct {
	QuestItem bool `json:"QuestItem"`
}

// Location is a game map as stored in the host database.
type Location struct {
	Base LocationBase `json:"base"`
}

// LocationBase holds the location identity fields.
type LocationBase struct {
	Enabled bool   `json:"Enabled"`
	ID      string `json:"Id"`
	MongoID string `json:"_Id"`
}

// Event records a single change made by a rule.
type Event struct {
	Type        string
	QuestID     string
	ObjectiveID string
	Data        map[string]any
}
