package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/types"
)

const questJSON = `{
  "_id": "q1",
  "QuestName": "Shootout",
  "side": "Pmc",
  "conditions": {
    "AvailableForStart": [],
    "AvailableForFinish": [
      {
        "id": "o1",
        "conditionType": "CounterCreator",
        "index": 0,
        "parentId": "",
        "dynamicLocale": false,
        "globalQuestCounterId": "",
        "visibilityConditions": [],
        "value": 5,
        "completeInSeconds": 0,
        "counter": {
          "id": "c1",
          "conditions": [
            {"id": "k1", "conditionType": "Kills", "target": "Savage", "savageRole": ["bossKilla"], "resetOnSessionEnd": false},
            {"id": "x1", "conditionType": "ExitStatus", "status": ["Survived"]}
          ]
        }
      }
    ],
    "Fail": []
  },
  "rewards": {"Success": []}
}`

func testDatabase(t *testing.T) *state.Database {
	t.Helper()
	var q types.Quest
	if err := json.Unmarshal([]byte(questJSON), &q); err != nil {
		t.Fatalf("decoding quest: %v", err)
	}
	db := state.NewDatabase()
	db.Quests[q.ID] = &q
	return db
}

func TestSaveRoundTrip(t *testing.T) {
	db := testDatabase(t)
	kill := db.Quests["q1"].Conditions.AvailableForFinish[0].Counter.Conditions[0].(*types.KillLeaf)
	kill.SavageRole = []string{}
	kill.Target = types.Target{Values: []string{"Any"}}

	dir := t.TempDir()
	if err := Save(db, dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, QuestsFile))
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	q := raw["q1"]
	if q["side"] != "Pmc" {
		t.Errorf("unknown quest key lost: %v", q)
	}
	obj := q["conditions"].(map[string]any)["AvailableForFinish"].([]any)[0].(map[string]any)
	if _, ok := obj["completeInSeconds"]; !ok {
		t.Error("unknown objective key lost")
	}
	leaves := obj["counter"].(map[string]any)["conditions"].([]any)
	leaf := leaves[0].(map[string]any)
	if leaf["target"] != "Any" {
		t.Errorf("target = %v, want Any", leaf["target"])
	}
	if roles, ok := leaf["savageRole"].([]any); !ok || len(roles) != 0 {
		t.Errorf("savageRole = %v, want []", leaf["savageRole"])
	}
	if _, ok := leaf["weapon"]; ok {
		t.Error("absent weapon list written as a field")
	}
	if status := leaves[1].(map[string]any)["status"]; status == nil {
		t.Error("passthrough leaf lost its fields")
	}

	if _, err := os.Stat(filepath.Join(dir, QuestConfigFile)); !os.IsNotExist(err) {
		t.Error("quest config written although none was loaded")
	}
}

func TestSaveQuestConfig(t *testing.T) {
	db := testDatabase(t)
	db.QuestConfig = &types.QuestConfig{RepeatableQuests: []*types.RepeatableTemplate{{
		Name:      "Daily",
		Locations: map[string][]string{"any": {"any"}},
	}}}

	dir := t.TempDir()
	if err := Save(db, dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, QuestConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"Daily"`) {
		t.Errorf("quest config = %s", data)
	}
}

func TestSaveStable(t *testing.T) {
	db := testDatabase(t)
	a, err := Quests(db)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Quests(db)
	if string(a) != string(b) {
		t.Error("output differs between calls")
	}
}
