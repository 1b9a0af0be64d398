// Package save writes a rewritten quest database back to JSON.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/questtweaks/engine/state"
)

// File names, relative to the output directory.
const (
	QuestsFile      = "quests.json"
	QuestConfigFile = "configs/quest.json"
)

// Quests serializes the quest table. Map keys are written sorted, so output
// is stable between runs.
func Quests(db *state.Database) ([]byte, error) {
	return json.MarshalIndent(db.Quests, "", "  ")
}

// QuestConfig serializes the repeatable quest configuration.
func QuestConfig(db *state.Database) ([]byte, error) {
	return json.MarshalIndent(db.QuestConfig, "", "  ")
}

// Save writes the quest table, and the quest configuration when one was
// loaded, under dir. Existing files are overwritten.
func Save(db *state.Database, dir string) error {
	data, err := Quests(db)
	if err != nil {
		return fmt.Errorf("encoding quests: %w", err)
	}
	if err := write(filepath.Join(dir, QuestsFile), data); err != nil {
		return err
	}

	if db.QuestConfig == nil {
		return nil
	}
	data, err = QuestConfig(db)
	if err != nil {
		return fmt.Errorf("encoding quest config: %w", err)
	}
	return write(filepath.Join(dir, QuestConfigFile), data)
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
