package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long:  `Shows each level, its difficulty preset and how many rounds it takes to win.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-8s  %s\n", "Level", "Preset", "Rounds")
	fmt.Printf("  %-5s  %-8s  %s\n", "-----", "------", "------")

	for i, rounds := range cfg.Levels {
		preset := string(config.PresetForLevel(i + 1))
		if preset == "" {
			preset = "-"
		}
		fmt.Printf("  %-5d  %-8s  %d\n", i+1, preset, rounds)
	}

	fmt.Println()
	fmt.Println("Run 'simon play --level <n>' to play a level.")
}
