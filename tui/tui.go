package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/questtweaks/engine"
	"github.com/nathoo/questtweaks/engine/save"
	"github.com/nathoo/questtweaks/engine/state"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed queries
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the report browser.
type Model struct {
	report *engine.Report
	db     *state.Database

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated output lines (unstyled, for re-wrapping)

	width     int
	height    int
	ready     bool
	quitting  bool
	saved     bool
	lastQuery string
	outDir    string
}

// reportOutputMsg carries query output into the Update loop.
type reportOutputMsg struct {
	input    string   // echoed query (empty for the opening summary)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model over a finished run.
func New(report *engine.Report, db *state.Database, outDir string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "summary"
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		report:  report,
		db:      db,
		input:   ti,
		history: NewHistory(100),
		outDir:  outDir,
	}
}

// Run starts the Bubble Tea program.
func Run(report *engine.Report, db *state.Database, outDir string) error {
	m := New(report, db, outDir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that prints the run summary.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := append(m.report.Summary(), "", "Type a query, or /help.")
		return reportOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, query output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case reportOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(reportOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastQuery == "" {
			m = m.appendOutput(reportOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isSystem: true,
			})
			return m, nil
		}
		input = m.lastQuery
	} else {
		m.lastQuery = input
	}

	m = m.appendOutput(reportOutputMsg{input: input, lines: m.report.Query(input)})
	return m, nil
}

// appendOutput adds lines to the transcript and refreshes the viewport.
func (m Model) appendOutput(msg reportOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between queries.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, styleQueryInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindEvent:
		return styledEvent(line)
	case kindNotice:
		return styleNotice.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleHeading.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Leading indentation is repeated on continuation lines.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	trimmed := strings.TrimLeft(text, " ")
	indent := text[:len(text)-len(trimmed)]
	if len(indent) >= width/2 {
		indent = ""
	}

	var result strings.Builder
	words := strings.Fields(trimmed)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(indent)
			result.WriteString(word)
			lineLen = len(indent) + wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(indent)
			result.WriteString(word)
			lineLen = len(indent) + wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(dir string) []string {
	if dir == "" {
		dir = m.outDir
	}
	if dir == "" {
		return []string{"Save failed: no output directory. Use /save <dir>."}
	}
	if err := save.Save(m.db, dir); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	m.saved = true
	return []string{fmt.Sprintf("Database saved to %s.", dir)}
}

func (m *Model) cmdHelp() []string {
	help := []string{
		"System:",
		"  /save [dir]      Write the rewritten database (default: --out)",
		"  /quit            Exit",
		"  /help            Show this help",
		"  /state           Show database sizes",
		"",
		"Queries:",
	}
	for _, line := range engine.QueryHelp {
		help = append(help, "  "+line)
	}
	return append(help,
		"  again (g)        Repeat the last query",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for query history",
	)
}

func (m *Model) cmdState() []string {
	output := []string{
		fmt.Sprintf("Quests: %d", len(m.db.Quests)),
		fmt.Sprintf("Items: %d", len(m.db.Items)),
		fmt.Sprintf("Locations: %d", len(m.db.Locations)),
		fmt.Sprintf("Locales: %d", len(m.db.Locales)),
	}
	if m.db.QuestConfig != nil {
		output = append(output, fmt.Sprintf("Repeatable templates: %d", len(m.db.QuestConfig.RepeatableQuests)))
	}
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for query history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
