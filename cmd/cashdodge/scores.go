package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

var flagScoresMode string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and agent statistics",
	Long: `Display the top 10 human runs and aggregated agent episodes.

Examples:
  cashdodge scores
  cashdodge scores --mode hard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show runs of one mode (easy, normal, hard, fixed, custom)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresMode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "all modes"
	if flagScoresMode != "" {
		title = flagScoresMode
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cashdodge play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-8s  %-4s  %-8s  %-10s  %s\n", "Rank", "Bank", "Lvl", "Mode", "Player", "Date")
		fmt.Printf("  %-4s  %-8s  %-4s  %-8s  %-10s  %s\n", "----", "----", "---", "----", "------", "----")

		for i, e := range scores {
			player := e.Player
			if player == "" {
				player = "local"
			}
			fmt.Printf("  %-4d  %-8s  %-4d  %-8s  %-10s  %s\n",
				i+1, fmt.Sprintf("$%d", e.Score), e.Level, e.Mode, player, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	printModeStats(store)
	printEpisodeStats(store)
}

func printModeStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("By mode:")
	modes := make([]string, 0, len(config.Presets)+1)
	for _, p := range config.Presets {
		modes = append(modes, string(p))
	}
	var extra []string
	for mode := range stats {
		if _, err := config.ParsePreset(mode); err != nil {
			extra = append(extra, mode)
		}
	}
	slices.Sort(extra)
	modes = append(modes, extra...)

	for _, mode := range modes {
		s, ok := stats[mode]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  games %-5d  best $%-6d  avg $%-8.1f  best level %d\n",
			mode, s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel)
	}
}

func printEpisodeStats(store *storage.Store) {
	stats, err := store.AllEpisodeStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Agent episodes:")
	fmt.Printf("  %-6s  %-10s  %-6s  %-8s  %-9s  %-10s  %s\n", "Source", "Policy", "Runs", "Best", "Avg", "Reward", "Steps")
	for _, s := range stats {
		policy := s.Policy
		if policy == "" {
			policy = "external"
		}
		fmt.Printf("  %-6s  %-10s  %-6d  %-8s  %-9.1f  %-10.1f  %.0f\n",
			s.Source, policy, s.Episodes, fmt.Sprintf("$%d", s.BestScore), s.AvgScore, s.AvgReward, s.AvgSteps)
	}
}
