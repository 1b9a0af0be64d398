package types

// Config is the tweak configuration. Key names follow the mod's config.json.
type Config struct {
	RevealAllQuestObjectives    bool              `json:"revealAllQuestObjectives" toml:"revealAllQuestObjectives"`
	RevealUnknownRewards        bool              `json:"revealUnknownRewards" toml:"revealUnknownRewards"`
	RemoveTimeGates             bool              `json:"removeTimeGates" toml:"removeTimeGates"`
	RemoveConditions            RemoveConditions  `json:"removeConditions" toml:"removeConditions"`
	AffectRepeatables           bool              `json:"affectRepeatables" toml:"affectRepeatables"`
	ExemptQuests                []string          `json:"exemptQuests" toml:"exemptQuests" validate:"dive,questid"`
	LightkeeperOnlyRequireLevel int               `json:"lightkeeperOnlyRequireLevel" toml:"lightkeeperOnlyRequireLevel" validate:"gte=0,lte=100"`
	HandoverItemCount           int               `json:"handoverItemCount" toml:"handoverItemCount"`
	EliminationCount            int               `json:"eliminationCount" toml:"eliminationCount"`
	TarkovShooterM10            bool              `json:"tarkovShooterM10" toml:"tarkovShooterM10"`
	AddMissingSetupShotguns     bool              `json:"addMissingSetupShotguns" toml:"addMissingSetupShotguns"`
	GunsmithChallenge           GunsmithChallenge `json:"gunsmithChallenge" toml:"gunsmithChallenge"`
	Locale                      string            `json:"locale" toml:"locale" validate:"required,max=16"`
}

// RemoveConditions holds the restriction removal switches.
type RemoveConditions struct {
	Target            bool `json:"target" toml:"target"`
	Weapon            bool `json:"weapon" toml:"weapon"`
	WeaponMods        bool `json:"weaponMods" toml:"weaponMods"`
	SelfGear          bool `json:"selfGear" toml:"selfGear"`
	EnemyGear         bool `json:"enemyGear" toml:"enemyGear"`
	SelfHealthEffect  bool `json:"selfHealthEffect" toml:"selfHealthEffect"`
	EnemyHealthEffect bool `json:"enemyHealthEffect" toml:"enemyHealthEffect"`
	BodyPart          bool `json:"bodyPart" toml:"bodyPart"`
	Distance          bool `json:"distance" toml:"distance"`
	Time              bool `json:"time" toml:"time"`
	Map               bool `json:"map" toml:"map"`
	Zone              bool `json:"zone" toml:"zone"`
	FindInRaid        bool `json:"findInRaid" toml:"findInRaid"`
}

// GunsmithChallenge configures the elimination challenge override.
// RequiredKills of 0 disables it.
type GunsmithChallenge struct {
	RequiredKills int    `json:"requiredKills" toml:"requiredKills" validate:"gte=0"`
	TargetType    string `json:"targetType" toml:"targetType"`
}

// AnyEnabled reports whether at least one removal switch is on.
func (r RemoveConditions) AnyEnabled() bool {
	return r.Target ||
		r.Weapon ||
		r.WeaponMods ||
		r.SelfGear ||
		r.EnemyGear ||
		r.SelfHealthEffect ||
		r.EnemyHealthEffect ||
		r.BodyPart ||
		r.Distance ||
		r.Time ||
		r.Map ||
		r.Zone ||
		r.FindInRaid
}

// ShouldModifyConditions reports whether the per-objective pipeline has
// anything to do. Negative counts disable the count overrides.
func (c *Config) ShouldModifyConditions() bool {
	return c.RemoveConditions.AnyEnabled() ||
		c.HandoverItemCount >= 0 ||
		c.EliminationCount >= 0
}

// IsExempt reports whether questID is on the exemption list.
func (c *Config) IsExempt(questID string) bool {
	for _, id := range c.ExemptQuests {
		if id == questID {
			return true
		}
	}
	return false
}
