package rules

import (
	"slices"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/types"
)

// ApplyObjectives runs the per-objective pipeline over a quest's finish
// objectives. Exempt quests are skipped entirely.
func ApplyObjectives(ctx *Context, q *types.Quest) {
	if !ctx.Config.ShouldModifyConditions() || ctx.Config.IsExempt(q.ID) {
		return
	}
	for _, obj := range q.Conditions.AvailableForFinish {
		if obj == nil {
			continue
		}
		applyObjective(ctx, q, obj)
	}
}

func applyObjective(ctx *Context, q *types.Quest, obj *types.Condition) {
	switch obj.ConditionType {
	case types.ConditionHandoverItem, types.ConditionFindItem:
		applyHandover(ctx, q, obj)
		return
	case types.ConditionCounterCreator:
	default:
		return
	}

	if obj.Counter == nil {
		obj.Counter = &types.Counter{}
	}
	if obj.Counter.Conditions == nil {
		obj.Counter.Conditions = []types.Leaf{}
	}

	remove := ctx.Config.RemoveConditions
	if remove.Zone && !remove.Map {
		ReclassifyZone(ctx, q, obj)
	}
	RemoveLeaves(ctx, q, obj)

	if OnlyRestrictive(obj.Counter.Conditions) {
		if !valueIs(obj, 0) {
			obj.Value = float(0)
			ctx.emit(events.ObjectiveCollapsed, q, obj.ID, nil)
		}
		return
	}

	kill := firstKillLeaf(obj)
	if kill == nil {
		return
	}
	if n := ctx.Config.EliminationCount; n >= 0 && kill.Kind() == types.LeafKills && !valueIs(obj, n) {
		obj.Value = float(n)
		ctx.emit(events.EliminationCountSet, q, obj.ID, map[string]any{"count": n})
	}
	RelaxKill(ctx, q, obj, kill)
}

// applyHandover relaxes a hand-in objective: found-in-raid and the required
// item count.
func applyHandover(ctx *Context, q *types.Quest, obj *types.Condition) {
	if ctx.Config.RemoveConditions.FindInRaid {
		if obj.OnlyFoundInRaid == nil || *obj.OnlyFoundInRaid {
			wasSet := obj.OnlyFoundInRaid != nil
			fir := false
			obj.OnlyFoundInRaid = &fir
			if wasSet {
				ctx.emit(events.FoundInRaidCleared, q, obj.ID, nil)
			}
		}
	}

	count := ctx.Config.HandoverItemCount
	if count < 0 || len(obj.Target.Values) == 0 {
		return
	}
	itemID := obj.Target.Values[0]
	item, ok := ctx.DB.Item(itemID)
	if !ok {
		ctx.Log.Debug("hand-in item not in item table", "quest", q.ID, "objective", obj.ID, "item", itemID)
		return
	}
	if !handoverCountApplies(item) || valueIs(obj, count) {
		return
	}
	obj.Value = float(count)
	ctx.emit(events.HandoverCountSet, q, obj.ID, map[string]any{"item": itemID, "count": count})
}

// handoverCountApplies reports whether an item's required count may be
// overridden. Quest items, keys and blacklisted items keep theirs.
func handoverCountApplies(item types.Item) bool {
	return !item.Props.QuestItem &&
		!refdata.KeyClasses[item.Parent] &&
		!refdata.HandoverCountBlacklist[item.ID]
}

// ReclassifyZone turns a zone restriction into a whole-map restriction.
//
// Without a Location leaf, the first InZone leaf is converted in place to a
// Location leaf targeting the first matching map. With a Location leaf
// already present (maps with day and night variants), every matching map is
// appended to its target instead, and the zone leaf is left for removal.
func ReclassifyZone(ctx *Context, q *types.Quest, obj *types.Condition) {
	leaves := obj.Counter.Conditions
	zoneAt := -1
	var loc *types.LocationLeaf
	for i, leaf := range leaves {
		switch l := leaf.(type) {
		case *types.ZoneLeaf:
			if zoneAt < 0 {
				zoneAt = i
			}
		case *types.LocationLeaf:
			if loc == nil {
				loc = l
			}
		}
	}
	if zoneAt < 0 {
		return
	}

	text := ctx.Locale[obj.ID]
	if loc == nil {
		entry, ok := ctx.Locations.First(q.Location, text)
		if !ok {
			return
		}
		zone := leaves[zoneAt].(*types.ZoneLeaf)
		leaves[zoneAt] = &types.LocationLeaf{
			ID:            zone.ID,
			ConditionType: types.LeafLocation,
			DynamicLocale: zone.DynamicLocale,
			Target:        types.Target{Values: []string{entry.ID}, IsList: true},
			Extra:         zone.Extra,
		}
		ctx.emit(events.ZoneConverted, q, obj.ID, map[string]any{"leaf": zone.ID, "location": entry.ID})
		return
	}

	for _, entry := range ctx.Locations.Match(q.Location, text) {
		if slices.Contains(loc.Target.Values, entry.ID) {
			continue
		}
		loc.Target.Values = append(loc.Target.Values, entry.ID)
		loc.Target.IsList = true
		ctx.emit(events.LocationAppended, q, obj.ID, map[string]any{"leaf": loc.ID, "location": entry.ID})
	}
}

// RemoveLeaves drops every leaf whose type is toggled for removal.
func RemoveLeaves(ctx *Context, q *types.Quest, obj *types.Condition) {
	remove := ctx.Config.RemoveConditions
	kept := make([]types.Leaf, 0, len(obj.Counter.Conditions))
	for _, leaf := range obj.Counter.Conditions {
		if leaf == nil {
			continue
		}
		drop := false
		switch leaf.Kind() {
		case types.LeafHealthEffect:
			drop = remove.SelfHealthEffect
		case types.LeafEquipment:
			drop = remove.SelfGear
		case types.LeafLocation:
			drop = remove.Map
		case types.LeafInZone:
			drop = remove.Zone
		}
		if drop {
			ctx.emit(events.LeafRemoved, q, obj.ID, map[string]any{"leaf": leaf.LeafID(), "type": string(leaf.Kind())})
			continue
		}
		kept = append(kept, leaf)
	}
	obj.Counter.Conditions = kept
}

// OnlyRestrictive reports whether no action leaf is left: every leaf only
// restricts where or how, so the objective has nothing to count.
func OnlyRestrictive(leaves []types.Leaf) bool {
	for _, leaf := range leaves {
		switch leaf.Kind() {
		case types.LeafEquipment, types.LeafLocation, types.LeafInZone:
		default:
			return false
		}
	}
	return true
}
