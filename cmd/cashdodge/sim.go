package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

var (
	flagEpisodes int
	flagPolicy   string
	flagReward   string
	flagSimTicks int
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot episodes without a terminal",
	Long: `Run a number of episodes headless, driven by an autopilot policy,
and print one line per episode. Episodes are stored in the scores
database unless --no-save is given.

Episode i uses seed+i, so a fixed --seed makes the whole run
reproducible.

Examples:
  cashdodge sim
  cashdodge sim --episodes 50 --policy random --reward survival
  cashdodge sim --seed 7 --max-ticks 3600 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "Number of episodes")
	simCmd.Flags().StringVar(&flagPolicy, "policy", agent.DefaultPolicy, "Autopilot policy")
	simCmd.Flags().StringVar(&flagReward, "reward", agent.DefaultReward, "Reward function")
	simCmd.Flags().IntVar(&flagSimTicks, "max-ticks", 18000, "Truncate episodes after this many steps (0 = unlimited)")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store episodes")
}

func runSim(_ *cobra.Command, _ []string) {
	dodgeCfg, _ := mustLoadGameConfig()

	reward, err := agent.NewReward(flagReward)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := agent.NewPolicy(flagPolicy, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("  %-3s  %-8s  %-20s  %-7s  %-7s  %-4s  %-9s  %s\n", "#", "Episode", "Seed", "Steps", "Bank", "Lvl", "Reward", "End")

	var total agent.EpisodeSummary
	done := 0
	for i := range flagEpisodes {
		runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: seed + int64(i)}
		env := agent.NewEnv(dodgeCfg, runtime, agent.WithReward(reward), agent.WithMaxTicks(flagSimTicks))
		policy, _ := agent.NewPolicy(flagPolicy, runtime.Seed)

		summary, runErr := agent.RunEpisode(ctx, env, policy, nil)
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}

		end := endReason(summary, runErr)
		fmt.Printf("  %-3d  %-8s  %-20d  %-7d  %-7s  %-4d  %-9.1f  %s\n",
			i+1, summary.ID[:8], summary.Seed, summary.Steps, fmt.Sprintf("$%d", summary.Score), summary.Level, summary.TotalReward, end)

		if store != nil {
			//nolint:errcheck // Best-effort save, the run continues regardless
			store.SaveEpisode(storage.Episode{
				EpisodeID:   summary.ID,
				Source:      storage.SourceSim,
				Policy:      summary.Policy,
				Reward:      summary.Reward,
				Seed:        summary.Seed,
				Steps:       summary.Steps,
				Score:       summary.Score,
				Level:       summary.Level,
				TotalReward: summary.TotalReward,
				EndReason:   end,
			})
		}

		if runErr != nil {
			break
		}
		total.Steps += summary.Steps
		total.Score += summary.Score
		total.TotalReward += summary.TotalReward
		done++
	}

	if done > 0 {
		n := float64(done)
		fmt.Println()
		fmt.Printf("%d episodes, policy %s, reward %s: avg bank $%.1f, avg reward %.1f, avg steps %.0f\n",
			done, flagPolicy, reward.Name(), float64(total.Score)/n, total.TotalReward/n, float64(total.Steps)/n)
	}
}

// endReason names how an episode ended.
func endReason(s agent.EpisodeSummary, err error) string {
	switch {
	case err != nil:
		return storage.EndAbandoned
	case s.Terminated:
		return storage.EndTerminated
	default:
		return storage.EndTruncated
	}
}
