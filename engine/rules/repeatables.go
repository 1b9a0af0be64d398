package rules

import (
	"slices"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/types"
)

// ApplyRepeatables relaxes the repeatable quest generation templates. It does
// nothing unless a removal switch is on and repeatables are affected.
func ApplyRepeatables(ctx *Context, qc *types.QuestConfig) {
	remove := ctx.Config.RemoveConditions
	if qc == nil || !remove.AnyEnabled() || !ctx.Config.AffectRepeatables {
		return
	}

	for _, tmpl := range qc.RepeatableQuests {
		if tmpl == nil {
			continue
		}
		gen := &tmpl.QuestConfig

		if remove.Map {
			changed := false
			if !anyMapOnly(tmpl.Locations) {
				tmpl.Locations = map[string][]string{refdata.AnyMap: {refdata.AnyMap}}
				changed = true
			}
			if gen.Exploration != nil && gen.Exploration.SpecificExits.Probability != 0 {
				gen.Exploration.SpecificExits.Probability = 0
				changed = true
			}
			if changed {
				ctx.emitTemplate(events.RepeatableMapCleared, tmpl)
			}
		}

		if remove.FindInRaid && gen.Completion != nil && gen.Completion.RequiredItemsAreFiR {
			gen.Completion.RequiredItemsAreFiR = false
			ctx.emitTemplate(events.RepeatableFiRCleared, tmpl)
		}

		for _, elim := range gen.Elimination {
			if elim == nil {
				continue
			}
			relaxElimination(ctx, tmpl, elim)
		}
	}
}

func relaxElimination(ctx *Context, tmpl *types.RepeatableTemplate, elim *types.EliminationConfig) {
	remove := ctx.Config.RemoveConditions

	if remove.Target && !anyTargetOnly(elim.Targets) {
		elim.Targets = []*types.ProbabilityObject{{
			Key:                 refdata.AnyTarget,
			RelativeProbability: 1,
			Data:                types.TargetInfo{IsBoss: false, IsPmc: false},
		}}
		ctx.emitTemplate(events.RepeatableTargetAny, tmpl)
	}
	if remove.Weapon && (elim.WeaponCategoryRequirementProb != 0 || elim.WeaponRequirementProb != 0) {
		elim.WeaponCategoryRequirementProb = 0
		elim.WeaponRequirementProb = 0
		ctx.emitTemplate(events.RepeatableWeapon, tmpl)
	}
	if remove.BodyPart && elim.BodyPartProb != 0 {
		elim.BodyPartProb = 0
		ctx.emitTemplate(events.RepeatableBodyPart, tmpl)
	}
	if remove.Distance && elim.DistProb != 0 {
		elim.DistProb = 0
		ctx.emitTemplate(events.RepeatableDistance, tmpl)
	}
}

func anyMapOnly(locs map[string][]string) bool {
	return len(locs) == 1 && slices.Equal(locs[refdata.AnyMap], []string{refdata.AnyMap})
}

func anyTargetOnly(targets []*types.ProbabilityObject) bool {
	if len(targets) != 1 || targets[0] == nil {
		return false
	}
	t := targets[0]
	return t.Key == refdata.AnyTarget && t.RelativeProbability == 1 && !t.Data.IsBoss && !t.Data.IsPmc
}

// emitTemplate records a template change. Templates have no quest id; the
// template name stands in for it.
func (ctx *Context) emitTemplate(eventType string, tmpl *types.RepeatableTemplate) {
	ctx.Events.Emit(eventType, "", "", map[string]any{"template": tmpl.Name})
	ctx.Log.Debug("repeatable template changed", "event", eventType, "template", tmpl.Name)
}
