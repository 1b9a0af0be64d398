// Package events records the changes made by the rule pass. Rules emit one
// event per actual change, so a pass over an already-tweaked database emits
// nothing.
package events

import (
	"sort"

	"github.com/nathoo/questtweaks/types"
)

// Event types emitted by the rules.
const (
	ObjectiveRevealed    = "objective_revealed"
	RewardRevealed       = "reward_revealed"
	TimeGateRemoved      = "time_gate_removed"
	StartReplaced        = "start_replaced"
	WeaponAdded          = "weapon_added"
	ChallengeApplied     = "challenge_applied"
	FoundInRaidCleared   = "found_in_raid_cleared"
	HandoverCountSet     = "handover_count_set"
	ZoneConverted        = "zone_converted"
	LocationAppended     = "location_appended"
	LeafRemoved          = "leaf_removed"
	ObjectiveCollapsed   = "objective_collapsed"
	EliminationCountSet  = "elimination_count_set"
	TargetCleared        = "target_cleared"
	WeaponCleared        = "weapon_cleared"
	WeaponModsCleared    = "weapon_mods_cleared"
	EnemyHealthCleared   = "enemy_health_cleared"
	EnemyGearCleared     = "enemy_gear_cleared"
	BodyPartCleared      = "body_part_cleared"
	DistanceCleared      = "distance_cleared"
	DaytimeCleared       = "daytime_cleared"
	RepeatableMapCleared = "repeatable_map_cleared"
	RepeatableFiRCleared = "repeatable_fir_cleared"
	RepeatableTargetAny  = "repeatable_target_any"
	RepeatableWeapon     = "repeatable_weapon_cleared"
	RepeatableBodyPart   = "repeatable_body_part_cleared"
	RepeatableDistance   = "repeatable_distance_cleared"
)

// Log accumulates events in emission order.
type Log struct {
	events []types.Event
}

// Emit appends an event. data may be nil.
func (l *Log) Emit(eventType, questID, objectiveID string, data map[string]any) {
	l.events = append(l.events, types.Event{
		Type:        eventType,
		QuestID:     questID,
		ObjectiveID: objectiveID,
		Data:        data,
	})
}

// All returns every event in emission order.
func (l *Log) All() []types.Event {
	return l.events
}

// Len returns the number of events.
func (l *Log) Len() int {
	return len(l.events)
}

// ByType returns the events of one type.
func (l *Log) ByType(eventType string) []types.Event {
	var out []types.Event
	for _, e := range l.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// ByQuest returns the events of one quest.
func (l *Log) ByQuest(questID string) []types.Event {
	var out []types.Event
	for _, e := range l.events {
		if e.QuestID == questID {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns the number of events per type.
func (l *Log) Counts() map[string]int {
	counts := map[string]int{}
	for _, e := range l.events {
		counts[e.Type]++
	}
	return counts
}

// Quests returns the sorted ids of quests with at least one event.
func (l *Log) Quests() []string {
	seen := map[string]bool{}
	var ids []string
	for _, e := range l.events {
		if e.QuestID == "" || seen[e.QuestID] {
			continue
		}
		seen[e.QuestID] = true
		ids = append(ids, e.QuestID)
	}
	sort.Strings(ids)
	return ids
}
