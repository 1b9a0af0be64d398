// Questtweaks relaxes the quest database of a game server: it reveals
// objectives, removes restrictions and patches individual quests according to
// a tweak configuration, then reports every change.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nathoo/questtweaks/cli"
	"github.com/nathoo/questtweaks/engine"
	"github.com/nathoo/questtweaks/engine/save"
	"github.com/nathoo/questtweaks/engine/state"
	"github.com/nathoo/questtweaks/loader"
	"github.com/nathoo/questtweaks/logger"
	"github.com/nathoo/questtweaks/tui"
	"github.com/nathoo/questtweaks/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	s, err := loadSettings(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := parseArgs(os.Args[1:], &s); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(1)
	}
	if s.ShowVersion {
		fmt.Printf("questtweaks %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	log := logger.New(logger.Config{
		Level:   s.LogLevel,
		Format:  s.LogFormat,
		Version: version,
	}, os.Stderr)

	if err := run(s, log); err != nil {
		log.Error("questtweaks failed", "error", err)
		os.Exit(1)
	}
}

func run(s settings, log *slog.Logger) error {
	cfg := loader.DefaultConfig()
	if s.ConfigPath != "" {
		var err error
		if cfg, err = loader.LoadConfig(s.ConfigPath); err != nil {
			return err
		}
	} else {
		log.Info("no config file given, using defaults")
	}

	db, err := loader.Load(s.DataDir, log)
	if err != nil {
		return err
	}

	report, err := engine.New(cfg, db, log).Run()
	if err != nil {
		return err
	}

	if s.OutDir != "" {
		if err := save.Save(db, s.OutDir); err != nil {
			return err
		}
		log.Info("database written", "dir", s.OutDir)
	}

	return browse(s, cfg, report, db)
}

// browse opens the report: script playback, the plain CLI, or the TUI.
func browse(s settings, cfg *types.Config, report *engine.Report, db *state.Database) error {
	// Script mode: open file, force plain, echo queries.
	if s.ScriptFile != "" {
		f, err := os.Open(s.ScriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(report, db, s.OutDir)
		c.In = f
		c.EchoInput = true
		c.Run()
		return nil
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if s.Plain || !isTerminal() {
		fmt.Printf("questtweaks %s, locale %s\n\n", version, cfg.Locale)
		cli.New(report, db, s.OutDir).Run()
		return nil
	}

	return tui.Run(report, db, s.OutDir)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
