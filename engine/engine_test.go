package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/refdata"
	"github.com/nathoo/questtweaks/engine/rules"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/types"
)

func num(v float64) *float64 { return &v }

func testDB() *state.Database {
	db := state.NewDatabase()
	db.Locations["bigmap"] = types.Location{Base: types.LocationBase{Enabled: true, ID: "bigmap", MongoID: "m_customs"}}
	db.Locales["en"] = map[string]string{"bigmap": "Customs"}
	db.Items["bolts"] = types.Item{ID: "bolts", Parent: "barter"}

	db.Quests["q_kill"] = &types.Quest{
		ID:       "q_kill",
		Name:     "Shootout",
		Location: "m_customs",
		Conditions: types.QuestConditions{
			AvailableForStart: []*types.Condition{{ID: "s", ConditionType: "Quest"}},
			AvailableForFinish: []*types.Condition{{
				ID:            "o_kill",
				ConditionType: types.ConditionCounterCreator,
				Value:         num(10),
				Counter: &types.Counter{ID: "c", Conditions: []types.Leaf{
					&types.KillLeaf{
						ID:            "k",
						ConditionType: types.LeafKills,
						Target:        types.Target{Values: []string{"Savage"}},
						SavageRole:    []string{"pmcBot"},
						Weapon:        []string{"w"},
					},
					&types.ZoneLeaf{ID: "z", ConditionType: types.LeafInZone, ZoneIDs: []string{"zone1"}},
				}},
			}},
		},
		Rewards: map[string][]*types.Reward{"Success": {{ID: "r", Unknown: true}}},
	}
	db.Quests["q_hand"] = &types.Quest{
		ID: "q_hand",
		Conditions: types.QuestConditions{
			AvailableForFinish: []*types.Condition{{
				ID:            "o_hand",
				ConditionType: types.ConditionHandoverItem,
				Value:         num(4),
				Target:        types.Target{Values: []string{"bolts"}, IsList: true},
			}},
		},
	}
	db.QuestConfig = &types.QuestConfig{RepeatableQuests: []*types.RepeatableTemplate{{
		Name:      "Daily",
		Locations: map[string][]string{"bigmap": {"bigmap"}},
	}}}
	return db
}

func testConfig() *types.Config {
	return &types.Config{
		RevealUnknownRewards: true,
		RemoveConditions:     types.RemoveConditions{Target: true, Weapon: true, Zone: true, Map: true},
		AffectRepeatables:    true,
		HandoverItemCount:    1,
		EliminationCount:     -1,
		Locale:               "en",
	}
}

func TestRun(t *testing.T) {
	db := testDB()
	report, err := New(testConfig(), db, nil).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	kill := db.Quests["q_kill"].Conditions.AvailableForFinish[0]
	if len(kill.Counter.Conditions) != 1 {
		t.Fatalf("leaves = %d, want only the kills leaf", len(kill.Counter.Conditions))
	}
	leaf := kill.Counter.Conditions[0].(*types.KillLeaf)
	if leaf.Target.Values[0] != "Any" || len(leaf.Weapon) != 0 {
		t.Errorf("kill leaf not relaxed: %+v", leaf)
	}
	if db.Quests["q_kill"].Rewards["Success"][0].Unknown {
		t.Error("reward not revealed")
	}
	if *db.Quests["q_hand"].Conditions.AvailableForFinish[0].Value != 1 {
		t.Error("hand-in count not set")
	}
	if _, ok := db.QuestConfig.RepeatableQuests[0].Locations["any"]; !ok {
		t.Error("repeatable locations not relaxed")
	}
	if len(report.Failures) != 0 {
		t.Errorf("failures = %v, want none", report.Failures)
	}
	if report.Events.Len() == 0 {
		t.Fatal("no events recorded")
	}
}

func TestRunTwiceChangesNothing(t *testing.T) {
	db := testDB()
	cfg := testConfig()
	cfg.RevealAllQuestObjectives = true
	cfg.RemoveTimeGates = true
	cfg.RemoveConditions.Map = false
	cfg.EliminationCount = 2

	if _, err := New(cfg, db, nil).Run(); err != nil {
		t.Fatal(err)
	}
	report, err := New(cfg, db, nil).Run()
	if err != nil {
		t.Fatal(err)
	}
	if report.Events.Len() != 0 {
		t.Errorf("second run recorded %d events: %v", report.Events.Len(), report.Events.Counts())
	}
}

func TestRunRequiresConfig(t *testing.T) {
	db := testDB()
	if _, err := New(nil, db, nil).Run(); !errors.Is(err, ErrNoConfig) {
		t.Errorf("err = %v, want ErrNoConfig", err)
	}
	if len(db.Quests["q_kill"].Conditions.AvailableForFinish[0].Counter.Conditions) != 2 {
		t.Error("database mutated without configuration")
	}
	if _, err := New(testConfig(), nil, nil).Run(); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("err = %v, want ErrNoDatabase", err)
	}
}

func TestMissingPatchQuestIsIsolated(t *testing.T) {
	db := testDB()
	cfg := testConfig()
	cfg.LightkeeperOnlyRequireLevel = 20
	cfg.TarkovShooterM10 = true

	report, err := New(cfg, db, nil).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Failures) != 2 {
		t.Fatalf("failures = %v, want 2", report.Failures)
	}
	for _, f := range report.Failures {
		if !errors.Is(f.Err, rules.ErrQuestNotFound) {
			t.Errorf("failure %s: %v, want ErrQuestNotFound", f.Patch, f.Err)
		}
	}
	if len(report.Events.ByType(events.TargetCleared)) != 1 {
		t.Error("pipeline did not run after patch failures")
	}
}

func TestPatchApplies(t *testing.T) {
	db := testDB()
	db.Quests[refdata.NetworkProviderPart1] = &types.Quest{
		ID: refdata.NetworkProviderPart1,
		Conditions: types.QuestConditions{
			AvailableForStart: []*types.Condition{{ID: "a"}, {ID: "b"}},
		},
	}
	cfg := testConfig()
	cfg.LightkeeperOnlyRequireLevel = 15

	report, err := New(cfg, db, nil).Run()
	if err != nil {
		t.Fatal(err)
	}
	start := db.Quests[refdata.NetworkProviderPart1].Conditions.AvailableForStart
	if len(start) != 1 || start[0].ID != "a" || *start[0].Value != 15 {
		t.Errorf("start = %+v, want single level gate reusing id a", start)
	}
	if len(report.Failures) != 0 {
		t.Errorf("failures = %v", report.Failures)
	}
}

func TestFeatureLines(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*types.Config)
		want string
	}{
		{"zone only", func(c *types.Config) { c.RemoveConditions = types.RemoveConditions{Zone: true} }, "Replacing zone elimination requirements with location."},
		{"zone and map", func(c *types.Config) { c.RemoveConditions = types.RemoveConditions{Zone: true, Map: true} }, "Removing zone and map elimination requirements."},
		{"handover", func(c *types.Config) { c.HandoverItemCount = 0 }, "Setting required number of items for hand-over to 0."},
		{"lightkeeper", func(c *types.Config) { c.LightkeeperOnlyRequireLevel = 30 }, "making it available at level 30."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &types.Config{HandoverItemCount: -1, EliminationCount: -1}
			tt.cfg(cfg)
			lines := strings.Join(featureLines(cfg), "\n")
			if !strings.Contains(lines, tt.want) {
				t.Errorf("feature lines %q missing %q", lines, tt.want)
			}
		})
	}

	if got := featureLines(&types.Config{HandoverItemCount: -1, EliminationCount: -1}); len(got) != 0 {
		t.Errorf("default config lines = %v, want none", got)
	}
}
