package types

import "encoding/json"

// LeafType is the conditionType discriminator of a counter leaf.
type LeafType string

const (
	LeafKills        LeafType = "Kills"
	LeafShots        LeafType = "Shots"
	LeafInZone       LeafType = "InZone"
	LeafLocation     LeafType = "Location"
	LeafEquipment    LeafType = "Equipment"
	LeafHealthEffect LeafType = "HealthEffect"
)

// Leaf is one predicate inside a Counter.
type Leaf interface {
	Kind() LeafType
	LeafID() string
}

// KillLeaf is a Kills or Shots leaf.
type KillLeaf struct {
	ID                      string            `json:"id"`
	ConditionType           LeafType          `json:"conditionType"`
	DynamicLocale           bool              `json:"dynamicLocale"`
	Target                  Target            `json:"target"`
	SavageRole              []string          `json:"savageRole"`
	Weapon                  []string          `json:"weapon"`
	WeaponCaliber           []string          `json:"weaponCaliber"`
	WeaponModsInclusive     [][]string        `json:"weaponModsInclusive"`
	WeaponModsExclusive     [][]string        `json:"weaponModsExclusive"`
	EnemyEquipmentInclusive [][]string        `json:"enemyEquipmentInclusive"`
	EnemyEquipmentExclusive [][]string        `json:"enemyEquipmentExclusive"`
	EnemyHealthEffects      []json.RawMessage `json:"enemyHealthEffects"`
	BodyPart                []string          `json:"bodyPart"`
	Distance                *Distance         `json:"distance"`
	Daytime                 *Daytime          `json:"daytime"`
	Extra                   Extra             `json:"-"`
}

// Distance is a kill distance requirement.
type Distance struct {
	CompareMethod string  `json:"compareMethod"`
	Value         float64 `json:"value"`
}

// Daytime is an in-raid time-of-day window in hours. 0–0 means no window.
type Daytime struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ZoneLeaf restricts progress to fine-grained trigger zones.
type ZoneLeaf struct {
	ID            string   `json:"id"`
	ConditionType LeafType `json:"conditionType"`
	DynamicLocale bool     `json:"dynamicLocale"`
	ZoneIDs       []string `json:"zoneIds"`
	Extra         Extra    `json:"-"`
}

// LocationLeaf restricts progress to whole maps.
type LocationLeaf struct {
	ID            string   `json:"id"`
	ConditionType LeafType `json:"conditionType"`
	DynamicLocale bool     `json:"dynamicLocale"`
	Target        Target   `json:"target"`
	Extra         Extra    `json:"-"`
}

// EquipmentLeaf restricts the player's own gear.
type EquipmentLeaf struct {
	ID                 string     `json:"id"`
	ConditionType      LeafType   `json:"conditionType"`
	DynamicLocale      bool       `json:"dynamicLocale"`
	EquipmentInclusive [][]string `json:"equipmentInclusive"`
	EquipmentExclusive [][]string `json:"equipmentExclusive"`
	Extra              Extra      `json:"-"`
}

// HealthEffectLeaf requires a status effect on the player.
type HealthEffectLeaf struct {
	ID            string   `json:"id"`
	ConditionType LeafType `json:"conditionType"`
	DynamicLocale bool     `json:"dynamicLocale"`
	Extra         Extra    `json:"-"`
}

// OtherLeaf is any leaf type the engine never rewrites (ExitStatus,
// VisitPlace, UseItem, ...). It is kept verbatim.
type OtherLeaf struct {
	ID            string   `json:"id"`
	ConditionType LeafType `json:"conditionType"`
	Extra         Extra    `json:"-"`
}

func (l *KillLeaf) Kind() LeafType         { return l.ConditionType }
func (l *ZoneLeaf) Kind() LeafType         { return LeafInZone }
func (l *LocationLeaf) Kind() LeafType     { return LeafLocation }
func (l *EquipmentLeaf) Kind() LeafType    { return LeafEquipment }
func (l *HealthEffectLeaf) Kind() LeafType { return LeafHealthEffect }
func (l *OtherLeaf) Kind() LeafType        { return l.ConditionType }

func (l *KillLeaf) LeafID() string         { return l.ID }
func (l *ZoneLeaf) LeafID() string         { return l.ID }
func (l *LocationLeaf) LeafID() string     { return l.ID }
func (l *EquipmentLeaf) LeafID() string    { return l.ID }
func (l *HealthEffectLeaf) LeafID() string { return l.ID }
func (l *OtherLeaf) LeafID() string        { return l.ID }
