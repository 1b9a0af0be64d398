package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/types"
)

func testReport(t *testing.T) *Report {
	t.Helper()
	report, err := New(testConfig(), testDB(), nil).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestQuery(t *testing.T) {
	report := testReport(t)

	tests := []struct {
		input string
		want  string
	}{
		{"", "changes across 2 quests."},
		{"summary", "repeatable template changes."},
		{"quests", "q_kill  Shootout"},
		{"quest q_kill", "target_cleared o_kill leaf=k"},
		{"quest q_hand", "handover_count_set o_hand count=1 item=bolts"},
		{"quest nope", "No changes to quest nope."},
		{"quest", "Usage: quest <id>"},
		{"type leaf_removed", "q_kill  leaf_removed o_kill leaf=z type=InZone"},
		{"type weapon_added", "No weapon_added events."},
		{"types", events.RewardRevealed},
		{"failures", "No failures."},
		{"SUMMARY", "changes across"},
		{"dance", `Unknown query "dance"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := strings.Join(report.Query(tt.input), "\n")
			if !strings.Contains(out, tt.want) {
				t.Errorf("Query(%q) = %q, want it to contain %q", tt.input, out, tt.want)
			}
		})
	}
}

func TestQueryFailures(t *testing.T) {
	report := testReport(t)
	report.Failures = []Failure{{Patch: "setup_shotguns", Err: errors.New("quest not found: x")}}

	if out := strings.Join(report.Query("failures"), "\n"); !strings.Contains(out, "setup_shotguns: quest not found: x") {
		t.Errorf("failures = %q", out)
	}
	if out := strings.Join(report.Summary(), "\n"); !strings.Contains(out, "1 patches failed") {
		t.Errorf("summary = %q", out)
	}
}

func TestEmptyReport(t *testing.T) {
	cfg := testConfig()
	cfg.RevealUnknownRewards = false
	cfg.RemoveConditions = types.RemoveConditions{}
	cfg.AffectRepeatables = false
	cfg.HandoverItemCount = -1

	report, err := New(cfg, testDB(), nil).Run()
	if err != nil {
		t.Fatal(err)
	}
	if out := report.Query("quests"); len(out) != 1 || out[0] != "No quests changed." {
		t.Errorf("quests = %v", out)
	}
}
