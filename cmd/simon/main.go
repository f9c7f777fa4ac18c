// simon is the Simon memory game for the terminal.
//
// Usage:
//
//	simon play               - Pick a level and play
//	simon levels             - List the levels and their round counts
//	simon scores [level]     - Show high scores
//	simon serve              - Start SSH server for remote play
//	simon api                - Start the HTTP API
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.simon/scores.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-simon/internal/games/simon"
)

const gameID = "simon"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "simon",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says - a memory game for your terminal",
	Long: `Simon Says plays a growing sequence of colored pads.
Repeat it without a mistake to reach the next round; survive every
round of a level to win.

Available commands:
  play     - Pick a level and play
  levels   - Show the levels
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Start the HTTP API

Examples:
  simon play
  simon play --level 3
  simon scores 2
  simon serve --ssh :2222
  simon api --http :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
