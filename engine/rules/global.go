package rules

import (
	"encoding/json"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/types"
)

// ApplyGlobal runs the unconditional per-quest field rules enabled in the
// config. Exempt quests are included.
func ApplyGlobal(ctx *Context, q *types.Quest) {
	if ctx.Config.RevealAllQuestObjectives {
		RevealObjectives(ctx, q)
	}
	if ctx.Config.RevealUnknownRewards {
		RevealRewards(ctx, q)
	}
	if ctx.Config.RemoveTimeGates {
		RemoveTimeGates(ctx, q)
	}
}

// RevealObjectives drops the visibility gating of every finish objective.
func RevealObjectives(ctx *Context, q *types.Quest) {
	for _, obj := range q.Conditions.AvailableForFinish {
		if obj == nil || (obj.VisibilityConditions != nil && len(obj.VisibilityConditions) == 0) {
			continue
		}
		hidden := len(obj.VisibilityConditions)
		obj.VisibilityConditions = []json.RawMessage{}
		if hidden > 0 {
			ctx.emit(events.ObjectiveRevealed, q, obj.ID, map[string]any{"gates": hidden})
		}
	}
}

// RevealRewards clears the unknown flag on every success reward.
func RevealRewards(ctx *Context, q *types.Quest) {
	for _, r := range q.Rewards["Success"] {
		if r == nil || !r.Unknown {
			continue
		}
		r.Unknown = false
		ctx.emit(events.RewardRevealed, q, "", map[string]any{"reward": r.ID})
	}
}

// RemoveTimeGates zeroes every start prerequisite delay.
func RemoveTimeGates(ctx *Context, q *types.Quest) {
	for _, prereq := range q.Conditions.AvailableForStart {
		if prereq == nil || prereq.AvailableAfter == nil || *prereq.AvailableAfter == 0 {
			continue
		}
		was := *prereq.AvailableAfter
		*prereq.AvailableAfter = 0
		ctx.emit(events.TimeGateRemoved, q, prereq.ID, map[string]any{"seconds": was})
	}
}
