package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the loaded database and normalizes the shapes the rules
// rely on: every CounterCreator objective gets a non-nil counter.
func validate(db *state.Database) *ValidationError {
	ve := &ValidationError{}

	if len(db.Quests) == 0 {
		ve.Errors = append(ve.Errors, "no quests loaded")
	}
	if len(db.Locations) == 0 {
		ve.Warnings = append(ve.Warnings, "no locations loaded, zone restrictions cannot be converted")
	}
	if len(db.Locales) == 0 {
		ve.Warnings = append(ve.Warnings, "no locales loaded, objective text matching is disabled")
	}

	mapIDs := map[string]bool{}
	for key, loc := range db.Locations {
		if loc.Base.ID == "" || loc.Base.MongoID == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("location %q has no id", key))
			continue
		}
		mapIDs[loc.Base.MongoID] = true
	}

	for _, id := range db.QuestIDs() {
		q := db.Quests[id]
		if q == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q is null", id))
			continue
		}
		if q.ID != id {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest key %q does not match its _id %q", id, q.ID))
		}
		if q.Location != "" && q.Location != "any" && len(mapIDs) > 0 && !mapIDs[q.Location] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("quest %q location %q does not match any location", id, q.Location))
		}
		validateObjectives(db, q, ve)
	}

	if db.QuestConfig != nil {
		for i, tmpl := range db.QuestConfig.RepeatableQuests {
			if tmpl == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf("repeatable template %d is null", i))
			}
		}
	}
	return ve
}

func validateObjectives(db *state.Database, q *types.Quest, ve *ValidationError) {
	seen := map[string]bool{}
	for i, obj := range q.Conditions.AvailableForFinish {
		if obj == nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q objective %d is null", q.ID, i))
			continue
		}
		if seen[obj.ID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("quest %q has duplicate objective id %q", q.ID, obj.ID))
		}
		seen[obj.ID] = true

		switch obj.ConditionType {
		case types.ConditionCounterCreator:
			if obj.Counter == nil {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("quest %q objective %q has no counter", q.ID, obj.ID))
				obj.Counter = &types.Counter{}
			}
			if obj.Counter.Conditions == nil {
				obj.Counter.Conditions = []types.Leaf{}
			}
		case types.ConditionHandoverItem, types.ConditionFindItem:
			if len(obj.Target.Values) == 0 {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("quest %q objective %q has no target item", q.ID, obj.ID))
			} else if _, ok := db.Item(obj.Target.Values[0]); !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"quest %q objective %q targets unknown item %q", q.ID, obj.ID, obj.Target.Values[0]))
			}
		}
	}
}
