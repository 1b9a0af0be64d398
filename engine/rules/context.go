// Package rules implements the quest rewrite rules: global field rules,
// targeted quest patches, the per-objective counter pipeline and the
// repeatable quest template rules.
package rules

import (
	"errors"
	"log/slog"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/locations"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/logger"
	"github.com/nathoo/questtweaks/types"
)

// ErrQuestNotFound is returned by a targeted patch whose hardcoded quest id
// is missing from the database.
var ErrQuestNotFound = errors.New("quest not found")

// Context carries everything a rule reads. Rules never hold global state.
type Context struct {
	Config    *types.Config
	DB        *state.Database
	Locale    map[string]string
	Locations locations.Index
	Events    *events.Log
	Log       *slog.Logger
}

// NewContext builds a rule context over db, resolving the configured locale
// and the location index.
func NewContext(cfg *types.Config, db *state.Database, log *slog.Logger) *Context {
	if log == nil {
		log = logger.Discard()
	}
	locale := db.Locale(cfg.Locale)
	return &Context{
		Config:    cfg,
		DB:        db,
		Locale:    locale,
		Locations: locations.Build(db.Locations, locale),
		Events:    &events.Log{},
		Log:       log,
	}
}

func (ctx *Context) emit(eventType string, q *types.Quest, objectiveID string, data map[string]any) {
	ctx.Events.Emit(eventType, q.ID, objectiveID, data)
	ctx.Log.Debug("quest changed", "event", eventType, "quest", q.ID, "objective", objectiveID)
}

func float(n int) *float64 {
	v := float64(n)
	return &v
}

func valueIs(c *types.Condition, n int) bool {
	return c.Value != nil && *c.Value == float64(n)
}
