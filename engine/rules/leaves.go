package rules

import (
	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/types"
)

// RelaxKill clears the restrictions of a Kills or Shots leaf per the
// removal switches. Cleared sets become empty, never nil.
func RelaxKill(ctx *Context, q *types.Quest, obj *types.Condition, kill *types.KillLeaf) {
	remove := ctx.Config.RemoveConditions
	emit := func(eventType string) {
		ctx.emit(eventType, q, obj.ID, map[string]any{"leaf": kill.ID})
	}

	if remove.Target {
		roles := empty(&kill.SavageRole)
		if setTarget(&kill.Target, refdata.AnyTarget) || roles {
			emit(events.TargetCleared)
		}
	}
	if remove.Weapon {
		weapons := empty(&kill.Weapon)
		if empty(&kill.WeaponCaliber) || weapons {
			emit(events.WeaponCleared)
		}
	}
	if remove.WeaponMods {
		inclusive := empty(&kill.WeaponModsInclusive)
		if empty(&kill.WeaponModsExclusive) || inclusive {
			emit(events.WeaponModsCleared)
		}
	}
	if remove.EnemyHealthEffect && empty(&kill.EnemyHealthEffects) {
		emit(events.EnemyHealthCleared)
	}
	if remove.EnemyGear {
		inclusive := empty(&kill.EnemyEquipmentInclusive)
		if empty(&kill.EnemyEquipmentExclusive) || inclusive {
			emit(events.EnemyGearCleared)
		}
	}
	if remove.BodyPart && empty(&kill.BodyPart) {
		emit(events.BodyPartCleared)
	}
	if remove.Distance && resetDistance(kill) {
		emit(events.DistanceCleared)
	}
	if remove.Time && resetDaytime(kill) {
		emit(events.DaytimeCleared)
	}
}

// empty replaces *s with an empty slice and reports whether it held anything.
func empty[T any](s *[]T) bool {
	had := len(*s) > 0
	*s = []T{}
	return had
}

// resetDistance sets the requirement to ">= 0", which every kill satisfies.
func resetDistance(kill *types.KillLeaf) bool {
	if d := kill.Distance; d != nil && d.CompareMethod == ">=" && d.Value == 0 {
		return false
	}
	kill.Distance = &types.Distance{CompareMethod: ">=", Value: 0}
	return true
}

// resetDaytime clears a time-of-day window. A leaf without one is left
// alone.
func resetDaytime(kill *types.KillLeaf) bool {
	d := kill.Daytime
	if d == nil || (d.From == 0 && d.To == 0) {
		return false
	}
	d.From, d.To = 0, 0
	return true
}
