// Package state holds the in-memory quest database the rules mutate, with
// lookup helpers.
package state

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/nathoo/questtweaks/types"
)

// Database is the host data the engine reads and rewrites in place.
type Database struct {
	Quests      map[string]*types.Quest
	Items       map[string]types.Item
	Locations   map[string]types.Location
	Locales     map[string]map[string]string // language -> key -> text
	QuestConfig *types.QuestConfig           // nil when the host ships none
}

// NewDatabase returns an empty database with every map allocated.
func NewDatabase() *Database {
	return &Database{
		Quests:    map[string]*types.Quest{},
		Items:     map[string]types.Item{},
		Locations: map[string]types.Location{},
		Locales:   map[string]map[string]string{},
	}
}

// Quest returns the quest with the given id.
func (db *Database) Quest(id string) (*types.Quest, bool) {
	q, ok := db.Quests[id]
	return q, ok && q != nil
}

// Item returns the item template with the given id.
func (db *Database) Item(id string) (types.Item, bool) {
	it, ok := db.Items[id]
	return it, ok
}

// Locale returns the text table for a language, resolved by LocaleKey. A
// missing language yields an empty table, never nil.
func (db *Database) Locale(lang string) map[string]string {
	if key, ok := db.LocaleKey(lang); ok && db.Locales[key] != nil {
		return db.Locales[key]
	}
	return map[string]string{}
}

// LocaleKey finds the loaded table for lang. An exact key wins; otherwise
// lang is matched as a language tag against the loaded keys that parse as
// one, so "en-US" finds "en". Host keys are not always valid tags ("ge",
// "jp"), which is why exact lookup comes first.
func (db *Database) LocaleKey(lang string) (string, bool) {
	if _, ok := db.Locales[lang]; ok {
		return lang, true
	}
	want, err := language.Parse(lang)
	if err != nil {
		return "", false
	}

	keys := make([]string, 0, len(db.Locales))
	for k := range db.Locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var tags []language.Tag
	var tagKeys []string
	for _, k := range keys {
		if tag, err := language.Parse(k); err == nil {
			tags = append(tags, tag)
			tagKeys = append(tagKeys, k)
		}
	}
	if len(tags) == 0 {
		return "", false
	}

	_, index, confidence := language.NewMatcher(tags).Match(want)
	if confidence < language.High {
		return "", false
	}
	return tagKeys[index], true
}

// QuestIDs returns every quest id in sorted order.
func (db *Database) QuestIDs() []string {
	ids := make([]string, 0, len(db.Quests))
	for id := range db.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FinishObjectives returns the completion objectives of a quest.
func FinishObjectives(q *types.Quest) []*types.Condition {
	return q.Conditions.AvailableForFinish
}

// CounterLeaves returns the leaves of a CounterCreator objective, or nil.
func CounterLeaves(c *types.Condition) []types.Leaf {
	if c.Counter == nil {
		return nil
	}
	return c.Counter.Conditions
}
