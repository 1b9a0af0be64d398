// Package locations builds the map lookup table used to turn zone
// restrictions into whole-map restrictions.
package locations

import (
	"sort"
	"strings"

	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/types"
)

// Entry is one known map.
type Entry struct {
	Name  string // display name, may be empty
	ID    string // location id, e.g. "bigmap"
	MapID string // database id the quests refer to
}

// Index is an ordered list of maps. Order matters: callers take the first
// match.
type Index []Entry

// Build indexes every enabled location in key order, then appends Factory
// night, which is disabled in the database but still a valid target.
func Build(locs map[string]types.Location, locale map[string]string) Index {
	keys := make([]string, 0, len(locs))
	for k := range locs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var ix Index
	for _, k := range keys {
		base := locs[k].Base
		if !base.Enabled {
			continue
		}
		ix = append(ix, Entry{
			Name:  displayName(base, locale),
			ID:    base.ID,
			MapID: base.MongoID,
		})
	}

	if night, ok := locs[refdata.FactoryNight]; ok && !night.Base.Enabled {
		ix = append(ix, Entry{
			Name:  refdata.FactoryNightName,
			ID:    night.Base.ID,
			MapID: night.Base.MongoID,
		})
	}
	return ix
}

// displayName resolves a location name. Some maps (terminal, labs) only have
// the "<_Id> Name" key.
func displayName(base types.LocationBase, locale map[string]string) string {
	if name := locale[base.ID]; name != "" {
		return name
	}
	return locale[base.MongoID+" Name"]
}

// Match returns every entry whose map id equals questLocation or whose
// display name appears in text, in index order.
func (ix Index) Match(questLocation, text string) []Entry {
	var out []Entry
	for _, e := range ix {
		if e.matches(questLocation, text) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first matching entry.
func (ix Index) First(questLocation, text string) (Entry, bool) {
	for _, e := range ix {
		if e.matches(questLocation, text) {
			return e, true
		}
	}
	return Entry{}, false
}

func (e Entry) matches(questLocation, text string) bool {
	if questLocation != "" && e.MapID == questLocation {
		return true
	}
	return e.Name != "" && strings.Contains(text, e.Name)
}
