// Package engine provides the Run() orchestrator that applies every rule
// group to a quest database in a fixed order.
package engine

import (
	"errors"
	"log/slog"

	"github.com/nathoo/questtweaks/engine/rules"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/logger"
	"github.com/nathoo/questtweaks/types"
)

var (
	// ErrNoConfig is returned by Run when no configuration was supplied.
	ErrNoConfig = errors.New("engine: no configuration")
	// ErrNoDatabase is returned by Run when no database was supplied.
	ErrNoDatabase = errors.New("engine: no database")
)

// Engine holds the configuration and the database it rewrites.
type Engine struct {
	Config *types.Config
	DB     *state.Database
	Log    *slog.Logger
}

// New creates an engine. A nil logger discards output.
func New(cfg *types.Config, db *state.Database, log *slog.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{Config: cfg, DB: db, Log: log}
}

// Run applies the rules to the database in place and reports what changed.
// Only a missing configuration or database is fatal; a failing targeted patch
// is recorded in the report and the remaining rules still run.
func (e *Engine) Run() (*Report, error) {
	if e.Config == nil {
		return nil, ErrNoConfig
	}
	if e.DB == nil {
		return nil, ErrNoDatabase
	}

	// 1. Resolve the locale and index the locations.
	ctx := rules.NewContext(e.Config, e.DB, e.Log)
	if _, ok := e.DB.LocaleKey(e.Config.Locale); !ok {
		e.Log.Warn("locale not loaded, map names will not match objective text", "locale", e.Config.Locale)
	}
	e.Log.Debug("locations indexed", "count", len(ctx.Locations))
	logFeatures(e.Log, e.Config)

	report := newReport(e.DB)
	ids := e.DB.QuestIDs()

	// 2. Global field rules, exempt quests included.
	for _, id := range ids {
		if q, ok := e.DB.Quest(id); ok {
			rules.ApplyGlobal(ctx, q)
		}
	}

	// 3. Targeted patches, each isolated from the others.
	for _, p := range rules.Patches() {
		if !p.Enabled(e.Config) {
			continue
		}
		if err := p.Apply(ctx); err != nil {
			e.Log.Error("quest patch failed", "patch", p.Name, "error", err)
			report.Failures = append(report.Failures, Failure{Patch: p.Name, Err: err})
		}
	}

	// 4. Per-objective pipeline.
	for _, id := range ids {
		if q, ok := e.DB.Quest(id); ok {
			rules.ApplyObjectives(ctx, q)
		}
	}

	// 5. Repeatable quest templates.
	rules.ApplyRepeatables(ctx, e.DB.QuestConfig)

	report.Events = ctx.Events
	e.Log.Info("quest tweaks applied",
		"changes", ctx.Events.Len(),
		"quests", len(ctx.Events.Quests()),
		"failures", len(report.Failures))
	return report, nil
}
