package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/platform/audio"
	"github.com/vovakirdan/cashdodge/internal/platform/tui"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

var (
	flagSound     bool
	flagVolume    float64
	flagWallClock bool
	flagAutopilot string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cash Dodge",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move (a press keeps moving for a moment; hold to repeat)
  P/Space      - Pause
  R            - Restart (after game over)
  B/Esc        - Back (when paused or after game over)
  Ctrl+S       - Save a screenshot to ~/.cashdodge/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, slower and fewer projectiles
  normal - Default settings
  hard   - Less health, faster and more projectiles
  fixed  - No leveling, difficulty never changes

Examples:
  cashdodge play
  cashdodge play --difficulty hard
  cashdodge play --sound
  cashdodge play --autopilot evade
  cashdodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume adjustment (0 = default, negative is quieter)")
	playCmd.Flags().BoolVar(&flagWallClock, "wall-clock", false, "Time spawns and notices by the wall clock instead of ticks")
	playCmd.Flags().StringVar(&flagAutopilot, "autopilot", "", "Let a policy play (see 'cashdodge list')")
}

func runPlay(_ *cobra.Command, _ []string) {
	dodgeCfg, preset := mustLoadGameConfig()
	cfg := terminalRuntime()

	opts := tui.GameOptions{
		Dodge:     dodgeCfg,
		Mode:      modeName(preset),
		WallClock: flagWallClock,
	}

	if flagAutopilot != "" {
		policy, err := agent.NewPolicy(flagAutopilot, flagSeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'cashdodge list' to see available policies.")
			os.Exit(1)
		}
		opts.Autopilot = policy
		opts.Mode = "autopilot-" + policy.Name()
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer player.Close()
			opts.Listener = player
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(store, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
