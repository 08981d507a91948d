package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
	"github.com/goalsat7/space-game/internal/platform/tui"
	"github.com/goalsat7/space-game/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/D or Left/Right  - Move
  W/Up/Space         - Jump
  J                  - Shoot (hold)
  P/Esc              - Pause
  Enter              - Start / Restart
  Q/Ctrl+C           - Quit

Difficulty presets:
  easy   - More lives, slower enemy spawns and fire
  normal - Default tuning
  hard   - Fewer lives, faster spawns and fire

Examples:
  space-game play
  space-game play --difficulty easy
  space-game play --seed 42
  space-game play --config ./my-game.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game config (custom path, user config, or embedded defaults)
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	runErr := tui.Run(cfg, store, rt, difficulty)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
