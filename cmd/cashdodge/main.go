// cashdodge is a terminal game about dodging bullets and grabbing cash, with a
// step-based environment for automated agents.
//
// Usage:
//
//	cashdodge play           - Play in the terminal
//	cashdodge menu           - Pick a difficulty interactively
//	cashdodge scores         - Show high scores and agent statistics
//	cashdodge serve          - Start SSH server for remote play
//	cashdodge agent          - Start websocket environment server for agents
//	cashdodge sim            - Run autopilot episodes headless
//	cashdodge list           - List reward functions and autopilot policies
//	cashdodge config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.cashdodge/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - Server log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cashdodge",
	Short: "Cash Dodge - dodge the bullets, grab the dough",
	Long: `Cash Dodge is a terminal game: steer your character around the
field, dodge the projectiles falling from the top and collect the cash
that keeps popping up. Every cash quota raises the level and the
shooting gets worse.

Available commands:
  play     - Play in the terminal
  menu     - Interactive difficulty picker
  scores   - View high scores and agent statistics
  serve    - Start SSH server for remote play
  agent    - Start websocket environment server for agents
  sim      - Run autopilot episodes without a terminal
  list     - Show reward functions and autopilot policies
  config   - Print the default configuration

Examples:
  cashdodge play
  cashdodge play --difficulty hard --sound
  cashdodge menu
  cashdodge serve --ssh :2222
  cashdodge agent --addr :8080
  cashdodge sim --episodes 20 --policy evade`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
