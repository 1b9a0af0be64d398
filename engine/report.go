package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/questtweaks/engine/events"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/types"
)

// Failure is a targeted patch that could not be applied.
type Failure struct {
	Patch string
	Err   error
}

// Report describes the outcome of a Run.
type Report struct {
	Events   *events.Log
	Failures []Failure
	names    map[string]string // quest id -> quest name
}

func newReport(db *state.Database) *Report {
	r := &Report{Events: &events.Log{}, names: map[string]string{}}
	for id, q := range db.Quests {
		if q != nil && q.Name != "" {
			r.names[id] = q.Name
		}
	}
	return r
}

// QueryHelp lists the report queries.
var QueryHelp = []string{
	"summary          changed quests and event counts",
	"quests           every changed quest",
	"quest <id>       changes made to one quest",
	"type <event>     every change of one type",
	"types            event types with counts",
	"failures         patches that could not be applied",
}

// Query answers a report query and returns the output lines.
func (r *Report) Query(input string) []string {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return r.Summary()
	}
	cmd, arg := strings.ToLower(fields[0]), ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "summary":
		return r.Summary()
	case "quests":
		return r.questList()
	case "quest":
		if arg == "" {
			return []string{"Usage: quest <id>"}
		}
		return r.quest(arg)
	case "type":
		if arg == "" {
			return []string{"Usage: type <event>"}
		}
		return r.byType(arg)
	case "types":
		return r.types()
	case "failures":
		return r.failures()
	default:
		return []string{fmt.Sprintf("Unknown query %q. Type /help for a list of queries.", cmd)}
	}
}

// Summary returns a short overview of the run.
func (r *Report) Summary() []string {
	lines := []string{
		fmt.Sprintf("%d changes across %d quests.", r.Events.Len(), len(r.Events.Quests())),
	}
	if n := r.templateChanges(); n > 0 {
		lines = append(lines, fmt.Sprintf("%d repeatable template changes.", n))
	}
	if len(r.Failures) > 0 {
		lines = append(lines, fmt.Sprintf("%d patches failed (see: failures).", len(r.Failures)))
	}
	return append(lines, r.types()...)
}

func (r *Report) templateChanges() int {
	n := 0
	for _, e := range r.Events.All() {
		if e.QuestID == "" {
			n++
		}
	}
	return n
}

func (r *Report) questList() []string {
	ids := r.Events.Quests()
	if len(ids) == 0 {
		return []string{"No quests changed."}
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("%s  %s (%d)", id, r.name(id), len(r.Events.ByQuest(id))))
	}
	return lines
}

func (r *Report) quest(id string) []string {
	evts := r.Events.ByQuest(id)
	if len(evts) == 0 {
		return []string{fmt.Sprintf("No changes to quest %s.", id)}
	}
	lines := []string{fmt.Sprintf("%s  %s", id, r.name(id))}
	for _, e := range evts {
		lines = append(lines, "  "+formatEvent(e))
	}
	return lines
}

func (r *Report) byType(eventType string) []string {
	evts := r.Events.ByType(eventType)
	if len(evts) == 0 {
		return []string{fmt.Sprintf("No %s events.", eventType)}
	}
	lines := make([]string, 0, len(evts))
	for _, e := range evts {
		lines = append(lines, fmt.Sprintf("%s  %s", e.QuestID, formatEvent(e)))
	}
	return lines
}

func (r *Report) types() []string {
	counts := r.Events.Counts()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-28s %d", k, counts[k]))
	}
	return lines
}

func (r *Report) failures() []string {
	if len(r.Failures) == 0 {
		return []string{"No failures."}
	}
	lines := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		lines = append(lines, fmt.Sprintf("%s: %v", f.Patch, f.Err))
	}
	return lines
}

func (r *Report) name(id string) string {
	if n, ok := r.names[id]; ok {
		return n
	}
	return "(unnamed)"
}

// formatEvent renders an event as "type objective key=value ...", with data
// keys sorted.
func formatEvent(e types.Event) string {
	var b strings.Builder
	b.WriteString(e.Type)
	if e.ObjectiveID != "" {
		b.WriteString(" ")
		b.WriteString(e.ObjectiveID)
	}
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	return b.String()
}
