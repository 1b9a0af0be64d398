// Package cli provides terminal I/O and meta-command dispatch for browsing
// the report of a tweak run.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/questtweaks/engine"
	"github.com/nathoo/questtweaks/engine/save"
	"github.com/nathoo/questtweaks/engine/state"
)

// CLI answers report queries typed at a prompt.
type CLI struct {
	Report    *engine.Report
	DB        *state.Database
	In        io.Reader
	Out       io.Writer
	OutDir    string // default target of /save
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastQuery string // for "again"/"g" repeat
}

// New creates a CLI over a finished run.
func New(report *engine.Report, db *state.Database, outDir string) *CLI {
	return &CLI{
		Report: report,
		DB:     db,
		In:     os.Stdin,
		Out:    os.Stdout,
		OutDir: outDir,
	}
}

// Run prints the summary, then loops: prompt → query → output.
func (c *CLI) Run() {
	c.printLines(c.Report.Summary())
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastQuery == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastQuery
		} else {
			c.lastQuery = input
		}

		c.printLines(c.Report.Query(input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the session should end.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(dir string) {
	if dir == "" {
		dir = c.OutDir
	}
	if dir == "" {
		c.printSystem("Save failed: no output directory. Use /save <dir>.")
		return
	}
	if err := save.Save(c.DB, dir); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Database saved to %s.", dir))
}

func (c *CLI) cmdHelp() {
	c.printLine("System:")
	c.printLine("  /save [dir]      Write the rewritten database (default: --out)")
	c.printLine("  /quit            Exit")
	c.printLine("  /help            Show this help")
	c.printLine("  /state           Show database sizes")
	c.printLine("")
	c.printLine("Queries:")
	for _, line := range engine.QueryHelp {
		c.printLine("  " + line)
	}
	c.printLine("  again (g)        Repeat the last query")
}

func (c *CLI) cmdState() {
	c.printSystem(fmt.Sprintf("Quests: %d", len(c.DB.Quests)))
	c.printSystem(fmt.Sprintf("Items: %d", len(c.DB.Items)))
	c.printSystem(fmt.Sprintf("Locations: %d", len(c.DB.Locations)))
	c.printSystem(fmt.Sprintf("Locales: %d", len(c.DB.Locales)))
	if c.DB.QuestConfig != nil {
		c.printSystem(fmt.Sprintf("Repeatable templates: %d", len(c.DB.QuestConfig.RepeatableQuests)))
	}
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
