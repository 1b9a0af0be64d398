package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const usage = "Usage: questtweaks [--version] [--plain] [--script <file>] [--config <file>] [--out <dir>] [--log-level <lvl>] <data_directory>"

// settings are read from the environment (and an optional .env file), then
// overridden by flags.
type settings struct {
	DataDir    string `env:"QUESTTWEAKS_DATA_DIR"`
	ConfigPath string `env:"QUESTTWEAKS_CONFIG"`
	OutDir     string `env:"QUESTTWEAKS_OUT"`
	LogLevel   string `env:"QUESTTWEAKS_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"QUESTTWEAKS_LOG_FORMAT" envDefault:"text"`
	Plain      bool   `env:"QUESTTWEAKS_PLAIN"`

	ScriptFile  string
	ShowVersion bool
}

// loadSettings reads envFile when it exists, then the environment.
func loadSettings(envFile string) (settings, error) {
	var s settings
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("reading %s: %w", envFile, err)
	}
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// parseArgs applies command-line flags over s.
func parseArgs(args []string, s *settings) error {
	value := func(i *int) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[*i])
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--version":
			s.ShowVersion = true
		case "--plain":
			s.Plain = true
		case "--script":
			s.ScriptFile, err = value(&i)
		case "--config":
			s.ConfigPath, err = value(&i)
		case "--out":
			s.OutDir, err = value(&i)
		case "--log-level":
			s.LogLevel, err = value(&i)
		default:
			if len(args[i]) > 1 && args[i][0] == '-' {
				return fmt.Errorf("unknown flag %s", args[i])
			}
			s.DataDir = args[i]
		}
		if err != nil {
			return err
		}
	}

	if !s.ShowVersion && s.DataDir == "" {
		return errors.New("no data directory")
	}
	return nil
}
