package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// loadGameConfig loads the game config and applies the --difficulty preset.
func loadGameConfig() (config.DodgeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	if preset != "" {
		config.ApplyDodgePreset(&cfg, preset)
	}
	return cfg, preset, nil
}

// mustLoadGameConfig is loadGameConfig for commands that cannot continue without it.
func mustLoadGameConfig() (config.DodgeConfig, config.DifficultyPreset) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, preset
}

// terminalRuntime builds a runtime config sized to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger creates a stderr logger honoring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// modeName is the mode recorded with scores for a preset.
// Runs on a custom config without a preset are kept apart from normal ones.
func modeName(p config.DifficultyPreset) string {
	switch {
	case p != "":
		return string(p)
	case flagConfig != "":
		return "custom"
	default:
		return string(config.DifficultyNormal)
	}
}
