package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/platform/audio"
	"github.com/vovakirdan/cashdodge/internal/platform/tui"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start Cash Dodge in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Go back from a paused or finished game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  cashdodge menu
  cashdodge menu --fps 30
  cashdodge menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	baseCfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var player *audio.Player
	if flagSound {
		player = audio.NewPlayer(0)
		if err := player.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	cfg := terminalRuntime()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		dodgeCfg := baseCfg
		config.ApplyDodgePreset(&dodgeCfg, menuResult.Preset)

		opts := tui.GameOptions{
			Dodge: dodgeCfg,
			Mode:  string(menuResult.Preset),
		}
		if player != nil {
			opts.Listener = player
		}

		backToMenu, runErr := tui.Run(store, cfg, opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
		if !backToMenu {
			break
		}
	}
}
