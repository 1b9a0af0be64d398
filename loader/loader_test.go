package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/questtweaks/types"
)

const debutID = "5936d90786f7742b1420ba5b"

func TestLoad_Database(t *testing.T) {
	db, err := Load("testdata/db", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	q, ok := db.Quest(debutID)
	if !ok {
		t.Fatalf("quest %s not loaded", debutID)
	}
	if q.Name != "Debut" {
		t.Errorf("Name = %q, want Debut", q.Name)
	}
	if len(q.Conditions.AvailableForFinish) != 3 {
		t.Fatalf("finish objectives = %d, want 3", len(q.Conditions.AvailableForFinish))
	}

	leaves := q.Conditions.AvailableForFinish[0].Counter.Conditions
	if len(leaves) != 2 {
		t.Fatalf("leaves = %d, want 2", len(leaves))
	}
	kill, ok := leaves[0].(*types.KillLeaf)
	if !ok {
		t.Fatalf("leaf 0 = %T, want *KillLeaf", leaves[0])
	}
	if kill.Target.IsList || kill.Target.Values[0] != "Savage" {
		t.Errorf("kill target = %+v, want single Savage", kill.Target)
	}
	if kill.Distance == nil || kill.Distance.Value != 50 {
		t.Errorf("distance = %+v, want 50", kill.Distance)
	}
	if _, ok := leaves[1].(*types.ZoneLeaf); !ok {
		t.Errorf("leaf 1 = %T, want *ZoneLeaf", leaves[1])
	}

	hand := q.Conditions.AvailableForFinish[1]
	if !hand.Target.IsList || hand.Target.Values[0] != "5448ba0b4bdc2d02308b456c" {
		t.Errorf("hand-in target = %+v", hand.Target)
	}
	if *q.Conditions.AvailableForStart[0].AvailableAfter != 3600 {
		t.Error("availableAfter not decoded")
	}

	if len(db.Locations) != 2 || !db.Locations["bigmap"].Base.Enabled {
		t.Errorf("locations = %+v", db.Locations)
	}
	if db.Locale("en")["bigmap"] != "Customs" {
		t.Error("en locale not loaded")
	}
	if db.QuestConfig == nil || len(db.QuestConfig.RepeatableQuests) != 1 {
		t.Fatal("quest config not loaded")
	}
	elim := db.QuestConfig.RepeatableQuests[0].QuestConfig.Elimination[0]
	if elim.BodyPartProb != 0.4 || elim.Targets[0].Key != "Savage" {
		t.Errorf("elimination = %+v", elim)
	}
}

func TestLoad_NormalizesMissingCounter(t *testing.T) {
	db, err := Load("testdata/db", nil)
	if err != nil {
		t.Fatal(err)
	}
	q, _ := db.Quest(debutID)
	obj := q.Conditions.AvailableForFinish[2]
	if obj.Counter == nil || obj.Counter.Conditions == nil {
		t.Errorf("counter = %+v, want non-nil with empty conditions", obj.Counter)
	}
}

func TestLoad_WithoutQuestConfig(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, "testdata/db/quests.json", filepath.Join(dir, QuestsFile))
	copyFile(t, "testdata/db/items.json", filepath.Join(dir, ItemsFile))

	db, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if db.QuestConfig != nil {
		t.Error("quest config should be nil when the file is absent")
	}
	if len(db.Locations) != 0 || len(db.Locales) != 0 {
		t.Error("missing directories should load as empty")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	_, err := Load("testdata/badkey", nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	assertContains(t, ve.Errors, "does not match its _id")
	assertContains(t, ve.Errors, "objective 0 is null")
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, err := Load("testdata/nope", nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoad_MissingQuests(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, nil); err == nil {
		t.Fatal("expected error without quests.json")
	}
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
