package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/audio"
	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/registry"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagLevel      int
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon",
	Long: `Pick a level and play. After a game you return to the level menu.

Controls:
  R G B Y / 1-4  - Press a pad (mouse clicks work too)
  Enter/Space    - Start, dismiss the result
  Left/Right     - Change level before starting
  P              - Pause
  Esc/Q          - Back to the menu / quit

Difficulty presets pick the starting level:
  easy   - level 1 (8 rounds)
  normal - level 2 (14 rounds)
  hard   - level 3 (20 rounds)
  expert - level 4 (31 rounds)

Examples:
  simon play
  simon play --level 2
  simon play --difficulty hard
  simon play --mute --config ./my-simon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Skip the menu and play this level")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable pad tones")
}

func runPlay(_ *cobra.Command, _ []string) {
	simon.SetConfigPath(flagConfig)
	if err := simon.SetDifficultyPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	simonCfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > len(simonCfg.Levels) {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", len(simonCfg.Levels))
		os.Exit(1)
	}

	closeAudio := setupAudio(simonCfg)
	defer closeAudio()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// A level on the command line skips the menu
	if flagLevel > 0 {
		if err := playLevel(store, cfg, flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	startLevel := 0
	if flagDifficulty != "" {
		if p, perr := config.ParseDifficulty(flagDifficulty); perr == nil {
			startLevel = config.LevelForPreset(p)
		}
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, gameID, simonCfg.Levels, startLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, gameID, simonCfg.Levels, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		startLevel = menuResult.Level
		if err := playLevel(store, cfg, menuResult.Level); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		// Loop back to menu
	}
}

// playLevel runs one game program at the given level.
func playLevel(store *storage.Store, cfg core.RuntimeConfig, level int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Fresh seed per game unless one was pinned
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return tui.Run(game, store, cfg, level)
}

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupAudio opens the speaker for pad tones. Failure is not fatal: the
// game runs silently. The returned func releases the player.
func setupAudio(cfg config.SimonConfig) func() {
	if flagMute || !cfg.Audio.Enabled {
		simon.SetAudio(audio.Silent{})
		return func() {}
	}

	reg, err := cfg.Registry()
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		simon.SetAudio(audio.Silent{})
		return func() {}
	}

	player := audio.NewPlayer(reg, cfg.Audio)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		simon.SetAudio(audio.Silent{})
		return func() {}
	}

	simon.SetAudio(player)
	return player.Close
}
