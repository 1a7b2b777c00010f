package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/platform/agentws"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

var (
	flagAgentAddr string
	flagMaxTicks  int
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Start the websocket environment server for agents",
	Long: `Start a websocket server that exposes the game as a step-based
environment. Each connection owns one environment.

Endpoint: ws://<addr>/ws

Query parameters:
  codec=json|msgpack   - Frame encoding (default json)
  reward=<name>        - Reward function (see 'cashdodge list')
  seed=<n>             - RNG seed for the first episode (0 = random)
  max_ticks=<n>        - Truncate episodes after n steps

Messages:
  {"type":"reset"}                       - Start a new episode
  {"type":"reset","data":{"seed":7}}     - Start a new episode with a seed
  {"type":"step","data":{"action":2}}    - 0 up, 1 down, 2 left, 3 right, 4 none
  {"type":"step","data":{"x":0.5,"y":-1}} - Analog stick input
  {"type":"info"}                        - Describe the environment

Every finished episode is stored in the scores database.

Examples:
  cashdodge agent
  cashdodge agent --addr :9000 --max-ticks 3600
  cashdodge agent --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runAgent,
}

func init() {
	agentCmd.Flags().StringVar(&flagAgentAddr, "addr", ":8080", "HTTP listen address")
	agentCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Default episode step limit (0 = unlimited)")
}

func runAgent(_ *cobra.Command, _ []string) {
	dodgeCfg, _ := mustLoadGameConfig()
	logger := newLogger("cashdodge-agent")

	opts := agentws.Options{
		Game:     dodgeCfg,
		Runtime:  core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		MaxTicks: flagMaxTicks,
		Logger:   logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, episodes will not be saved", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := agentws.NewServer(opts).ListenAndServe(ctx, flagAgentAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
