package types

// QuestConfig is the host's quest configuration. Only the repeatable quest
// generation templates are modeled.
type QuestConfig struct {
	RepeatableQuests []*RepeatableTemplate `json:"repeatableQuests"`
	Extra            Extra                 `json:"-"`
}

// RepeatableTemplate is the generation template for one repeatable quest
// pool (daily, weekly, scav daily).
type RepeatableTemplate struct {
	Name        string               `json:"name"`
	Locations   map[string][]string  `json:"locations"`
	QuestConfig RepeatableGeneration `json:"questConfig"`
	Extra       Extra                `json:"-"`
}

// RepeatableGeneration holds the per-type generation settings.
type RepeatableGeneration struct {
	Exploration *ExplorationConfig   `json:"Exploration"`
	Completion  *CompletionConfig    `json:"Completion"`
	Elimination []*EliminationConfig `json:"Elimination"`
	Extra       Extra                `json:"-"`
}

// ExplorationConfig controls exploration quest generation.
type ExplorationConfig struct {
	SpecificExits SpecificExits `json:"specificExits"`
	Extra         Extra         `json:"-"`
}

// SpecificExits controls how often an exploration quest names an exit.
type SpecificExits struct {
	Probability float64 `json:"probability"`
	Extra       Extra   `json:"-"`
}

// CompletionConfig controls hand-in quest generation.
type CompletionConfig struct {
	RequiredItemsAreFiR bool  `json:"requiredItemsAreFiR"`
	Extra               Extra `json:"-"`
}

// EliminationConfig controls elimination quest generation for one level range.
type EliminationConfig struct {
	Targets                       []*ProbabilityObject `json:"targets"`
	BodyPartProb                  float64              `json:"bodyPartProb"`
	DistProb                      float64              `json:"distProb"`
	WeaponCategoryRequirementProb float64              `json:"weaponCategoryRequirementProb"`
	WeaponRequirementProb         float64              `json:"weaponRequirementProb"`
	Extra                         Extra                `json:"-"`
}

// ProbabilityObject is one weighted entry of a generation list.
type ProbabilityObject struct {
	Key                 string     `json:"key"`
	RelativeProbability float64    `json:"relativeProbability"`
	Data                TargetInfo `json:"data"`
	Extra               Extra      `json:"-"`
}

// TargetInfo describes an elimination target.
type TargetInfo struct {
	IsBoss bool  `json:"isBoss"`
	IsPmc  bool  `json:"isPmc"`
	Extra  Extra `json:"-"`
}
