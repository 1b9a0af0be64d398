package rules

import (
	"testing"

	"github.com/nathoo/questtweaks/types"
)

func testQuestConfig() *types.QuestConfig {
	return &types.QuestConfig{
		RepeatableQuests: []*types.RepeatableTemplate{{
			Name:      "Daily",
			Locations: map[string][]string{"bigmap": {"bigmap"}, "factory4_day": {"factory4_day", "factory4_night"}},
			QuestConfig: types.RepeatableGeneration{
				Exploration: &types.ExplorationConfig{SpecificExits: types.SpecificExits{Probability: 0.25}},
				Completion:  &types.CompletionConfig{RequiredItemsAreFiR: true},
				Elimination: []*types.EliminationConfig{{
					Targets: []*types.ProbabilityObject{
						{Key: "Savage", RelativeProbability: 7},
						{Key: "bossKilla", RelativeProbability: 1, Data: types.TargetInfo{IsBoss: true}},
					},
					BodyPartProb:                  0.4,
					DistProb:                      0.25,
					WeaponCategoryRequirementProb: 0.2,
					WeaponRequirementProb:         0.1,
				}},
			},
		}},
	}
}

func TestApplyRepeatables(t *testing.T) {
	qc := testQuestConfig()
	cfg := testConfig()
	cfg.AffectRepeatables = true
	cfg.RemoveConditions = allRemovals()
	ApplyRepeatables(testContext(cfg, testDB()), qc)

	tmpl := qc.RepeatableQuests[0]
	if len(tmpl.Locations) != 1 || len(tmpl.Locations["any"]) != 1 || tmpl.Locations["any"][0] != "any" {
		t.Errorf("locations = %v, want {any: [any]}", tmpl.Locations)
	}
	gen := tmpl.QuestConfig
	if gen.Exploration.SpecificExits.Probability != 0 {
		t.Error("specific exit probability not zeroed")
	}
	if gen.Completion.RequiredItemsAreFiR {
		t.Error("completion still requires found in raid")
	}
	elim := gen.Elimination[0]
	if len(elim.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(elim.Targets))
	}
	target := elim.Targets[0]
	if target.Key != "Any" || target.RelativeProbability != 1 || target.Data.IsBoss || target.Data.IsPmc {
		t.Errorf("target = %+v, want Any at probability 1", target)
	}
	if elim.BodyPartProb != 0 || elim.DistProb != 0 || elim.WeaponCategoryRequirementProb != 0 || elim.WeaponRequirementProb != 0 {
		t.Errorf("elimination probabilities not zeroed: %+v", elim)
	}

	again := testContext(cfg, testDB())
	ApplyRepeatables(again, qc)
	if again.Events.Len() != 0 {
		t.Errorf("second pass emitted %d events", again.Events.Len())
	}
}

func TestApplyRepeatablesSkipped(t *testing.T) {
	tests := []struct {
		name   string
		affect bool
		remove types.RemoveConditions
	}{
		{"repeatables not affected", false, allRemovals()},
		{"no removal switch", true, types.RemoveConditions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qc := testQuestConfig()
			cfg := testConfig()
			cfg.AffectRepeatables = tt.affect
			cfg.RemoveConditions = tt.remove
			cfg.EliminationCount = 3
			ctx := testContext(cfg, testDB())
			ApplyRepeatables(ctx, qc)

			if ctx.Events.Len() != 0 || len(qc.RepeatableQuests[0].Locations) != 2 {
				t.Error("repeatable templates changed")
			}
		})
	}
}

func TestApplyRepeatablesPartialSwitches(t *testing.T) {
	qc := testQuestConfig()
	qc.RepeatableQuests[0].QuestConfig.Exploration = nil
	qc.RepeatableQuests = append(qc.RepeatableQuests, &types.RepeatableTemplate{Name: "Weekly"})
	cfg := testConfig()
	cfg.AffectRepeatables = true
	cfg.RemoveConditions.BodyPart = true
	ApplyRepeatables(testContext(cfg, testDB()), qc)

	elim := qc.RepeatableQuests[0].QuestConfig.Elimination[0]
	if elim.BodyPartProb != 0 {
		t.Error("body part probability not zeroed")
	}
	if elim.DistProb == 0 || len(elim.Targets) != 2 {
		t.Error("switches that are off were applied")
	}
	if len(qc.RepeatableQuests[0].Locations) != 2 {
		t.Error("locations changed with map switch off")
	}
}

func TestNilQuestConfig(t *testing.T) {
	cfg := testConfig()
	cfg.AffectRepeatables = true
	cfg.RemoveConditions = allRemovals()
	ApplyRepeatables(testContext(cfg, testDB()), nil)
}
