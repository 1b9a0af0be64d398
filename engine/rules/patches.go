package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/types"
)

// Patch is one targeted quest patch. Patches are isolated: an error from one
// never prevents another from running.
type Patch struct {
	Name    string
	Enabled func(cfg *types.Config) bool
	Apply   func(ctx *Context) error
}

// Patches returns the targeted patches in the order they run.
func Patches() []Patch {
	return []Patch{
		{
			Name:    "lightkeeper_level",
			Enabled: func(cfg *types.Config) bool { return cfg.LightkeeperOnlyRequireLevel > 0 },
			Apply: func(ctx *Context) error {
				return RequireLevelOnly(ctx, refdata.NetworkProviderPart1, ctx.Config.LightkeeperOnlyRequireLevel)
			},
		},
		{
			Name:    "tarkov_shooter_m10",
			Enabled: func(cfg *types.Config) bool { return cfg.TarkovShooterM10 },
			Apply: func(ctx *Context) error {
				return AddWeapons(ctx, refdata.TarkovShooter, []string{refdata.SakoTRGM10})
			},
		},
		{
			Name:    "setup_shotguns",
			Enabled: func(cfg *types.Config) bool { return cfg.AddMissingSetupShotguns },
			Apply: func(ctx *Context) error {
				return AddWeapons(ctx, []string{refdata.Setup}, refdata.SetupShotguns)
			},
		},
		{
			Name:    "gunsmith_challenge",
			Enabled: func(cfg *types.Config) bool { return cfg.GunsmithChallenge.RequiredKills > 0 },
			Apply: func(ctx *Context) error {
				return ApplyGunsmithChallenge(ctx, refdata.GunsmithChallenge)
			},
		},
	}
}

func lookup(ctx *Context, questID string) (*types.Quest, error) {
	q, ok := ctx.DB.Quest(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, questID)
	}
	return q, nil
}

// RequireLevelOnly replaces a quest's start prerequisites with a single
// level gate. The first original condition id is reused so locale text keyed
// by it stays attached.
func RequireLevelOnly(ctx *Context, questID string, level int) error {
	q, err := lookup(ctx, questID)
	if err != nil {
		return err
	}

	start := q.Conditions.AvailableForStart
	if len(start) == 1 && isLevelGate(start[0], level) {
		return nil
	}

	id := levelConditionID(q.ID)
	if len(start) > 0 && start[0] != nil && start[0].ID != "" {
		id = start[0].ID
	}
	q.Conditions.AvailableForStart = []*types.Condition{{
		ID:                   id,
		ConditionType:        types.ConditionLevel,
		CompareMethod:        ">=",
		Value:                float(level),
		Index:                0,
		ParentID:             "",
		DynamicLocale:        false,
		GlobalQuestCounterID: "",
		VisibilityConditions: []json.RawMessage{},
	}}
	ctx.emit(events.StartReplaced, q, id, map[string]any{"level": level, "replaced": len(start)})
	return nil
}

func isLevelGate(c *types.Condition, level int) bool {
	return c != nil &&
		c.ConditionType == types.ConditionLevel &&
		c.CompareMethod == ">=" &&
		valueIs(c, level)
}

// levelConditionID derives a stable id for a synthesized level condition so
// repeated runs produce the same database.
func levelConditionID(questID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(questID+"/Level")).String()
}

// AddWeapons appends weapons to the Kills and Shots leaves of the given
// quests. Weapons already accepted are not added again. Missing quests are
// reported together after the rest are patched.
func AddWeapons(ctx *Context, questIDs []string, weapons []string) error {
	var errs []error
	for _, questID := range questIDs {
		q, err := lookup(ctx, questID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, obj := range counterObjectives(q) {
			for _, kill := range killLeaves(obj) {
				for _, w := range weapons {
					if slices.Contains(kill.Weapon, w) {
						continue
					}
					kill.Weapon = append(kill.Weapon, w)
					ctx.emit(events.WeaponAdded, q, obj.ID, map[string]any{"leaf": kill.ID, "weapon": w})
				}
			}
		}
	}
	return errors.Join(errs...)
}

// ApplyGunsmithChallenge sets the kill count and target of the challenge
// quests. An unknown target type disables the challenge for this run.
func ApplyGunsmithChallenge(ctx *Context, questIDs []string) error {
	challenge := ctx.Config.GunsmithChallenge
	if !refdata.ChallengeTargets[challenge.TargetType] {
		ctx.Log.Warn("unknown gunsmith challenge target type, challenge disabled",
			"targetType", challenge.TargetType)
		return nil
	}

	var errs []error
	for _, questID := range questIDs {
		q, err := lookup(ctx, questID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, obj := range counterObjectives(q) {
			kills := firstKillLeaf(obj)
			if kills == nil || kills.ConditionType != types.LeafKills {
				continue
			}
			changed := false
			if !valueIs(obj, challenge.RequiredKills) {
				obj.Value = float(challenge.RequiredKills)
				changed = true
			}
			if setTarget(&kills.Target, challenge.TargetType) {
				changed = true
			}
			if challenge.TargetType != "Savage" && len(kills.SavageRole) > 0 {
				kills.SavageRole = []string{}
				changed = true
			}
			if changed {
				ctx.emit(events.ChallengeApplied, q, obj.ID, map[string]any{
					"kills":  challenge.RequiredKills,
					"target": challenge.TargetType,
				})
			}
		}
	}
	return errors.Join(errs...)
}

// setTarget points t at a single value, keeping its wire form. It reports
// whether anything changed.
func setTarget(t *types.Target, value string) bool {
	if len(t.Values) == 1 && t.Values[0] == value {
		return false
	}
	t.Values = []string{value}
	return true
}

func counterObjectives(q *types.Quest) []*types.Condition {
	var out []*types.Condition
	for _, obj := range state.FinishObjectives(q) {
		if obj != nil && obj.ConditionType == types.ConditionCounterCreator {
			out = append(out, obj)
		}
	}
	return out
}

func killLeaves(obj *types.Condition) []*types.KillLeaf {
	var out []*types.KillLeaf
	for _, leaf := range state.CounterLeaves(obj) {
		if kill, ok := leaf.(*types.KillLeaf); ok {
			out = append(out, kill)
		}
	}
	return out
}

func firstKillLeaf(obj *types.Condition) *types.KillLeaf {
	for _, leaf := range state.CounterLeaves(obj) {
		if kill, ok := leaf.(*types.KillLeaf); ok {
			return kill
		}
	}
	return nil
}
