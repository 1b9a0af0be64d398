// Package loader reads a host quest database and a tweak configuration from
// disk.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/logger"
	"github.com/nathoo/questtweaks/types"
)

// Database layout, relative to the data directory.
const (
	QuestsFile      = "quests.json"
	ItemsFile       = "items.json"
	LocationsDir    = "locations"
	LocalesDir      = "locales"
	QuestConfigFile = "configs/quest.json"
)

// Load reads the database under dir:
//
//	quests.json            quest id -> quest
//	items.json             item id -> item template
//	locations/<id>.json    one location per file
//	locales/<lang>.json    text key -> text
//	configs/quest.json     repeatable quest templates, optional
//
// Structural problems are returned together as a *ValidationError; warnings
// are logged.
func Load(dir string, log *slog.Logger) (*state.Database, error) {
	if log == nil {
		log = logger.Discard()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", dir)
	}

	db := state.NewDatabase()
	if err := readJSON(filepath.Join(dir, QuestsFile), &db.Quests); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, ItemsFile), &db.Items); err != nil {
		return nil, err
	}

	locs, err := readJSONDir[types.Location](filepath.Join(dir, LocationsDir))
	if err != nil {
		return nil, err
	}
	db.Locations = locs

	locales, err := readJSONDir[map[string]string](filepath.Join(dir, LocalesDir))
	if err != nil {
		return nil, err
	}
	db.Locales = locales

	qcPath := filepath.Join(dir, QuestConfigFile)
	if _, err := os.Stat(qcPath); err == nil {
		db.QuestConfig = &types.QuestConfig{}
		if err := readJSON(qcPath, db.QuestConfig); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", qcPath, err)
	}

	ve := validate(db)
	for _, w := range ve.Warnings {
		log.Warn(w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	log.Info("database loaded",
		"quests", len(db.Quests),
		"items", len(db.Items),
		"locations", len(db.Locations),
		"locales", len(db.Locales),
		"repeatables", db.QuestConfig != nil)
	return db, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// readJSONDir decodes every .json file in dir, keyed by file name without
// extension. A missing directory yields an empty map.
func readJSONDir[T any](dir string) (map[string]T, error) {
	out := map[string]T{}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		var v T
		if err := readJSON(filepath.Join(dir, name), &v); err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(name, ".json")] = v
	}
	return out, nil
}
