package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets, reward functions and autopilot policies",
	Long:  `Shows the difficulty presets, the reward functions agents can be scored with and the built-in autopilot policies.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()
	for _, p := range config.Presets {
		fmt.Printf("  %-8s  %s\n", p, p.Description())
	}

	printRegistry("Reward functions", agent.Rewards.List(), agent.DefaultReward)
	printRegistry("Autopilot policies", agent.Policies.List(), agent.DefaultPolicy)

	fmt.Println()
	fmt.Println("Run 'cashdodge sim --policy <name> --reward <name>' to try them.")
}

func printRegistry(title string, items []registry.Info, def string) {
	fmt.Println()
	fmt.Printf("%s:\n", title)
	fmt.Println()

	// Calculate column widths
	maxLen := 4 // "Name" header
	for _, it := range items {
		maxLen = max(maxLen, len(it.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")

	for _, it := range items {
		desc := it.Description
		if it.Name == def {
			desc += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxLen, it.Name, desc)
	}
}
