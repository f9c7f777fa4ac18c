package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 results, for one level or across all levels.
Score is the number of rounds completed.

Examples:
  simon scores
  simon scores 3
  simon scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all stored scores")
}

func runScores(_ *cobra.Command, args []string) {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		level = n
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	var scores []storage.ScoreEntry
	if level > 0 {
		scores, err = store.TopScoresByLevel(gameID, level, 10)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	if level > 0 {
		fmt.Printf("High Scores - Level %d\n", level)
	} else {
		fmt.Println("High Scores - All Levels")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'simon play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-12s  %s\n", "Rank", "Level", "Rounds", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "WON"
		}
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-6d  %-6s  %-12s  %s\n", i+1, entry.Level, entry.Score, result, player, dateStr)
	}

	// Show summary
	fmt.Println()
	if level > 0 {
		if best, err := store.HighScore(gameID, level); err == nil {
			fmt.Printf("Best: %d rounds\n", best)
		}
		return
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Wins: %d (%.0f%%)  Best: %d\n",
			stats.GamesCount, stats.Wins, stats.WinRate()*100, stats.HighScore)
	}
}
