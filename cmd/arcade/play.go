package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinwren/pocket-arcade/internal/config"
	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/games/caverun"
	"github.com/tinwren/pocket-arcade/internal/games/glide"
	"github.com/tinwren/pocket-arcade/internal/platform/tui"
	"github.com/tinwren/pocket-arcade/internal/registry"
	"github.com/tinwren/pocket-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Play a specific game directly by its ID.

Use 'arcade list' to see available game IDs.

Examples:
  arcade play caverun
  arcade play glide --fps 60
  arcade play caverun --config my-tuning.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := args[0]

		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game: %s (use 'arcade list' to see available games)", gameID)
		}

		game, err := createGame(gameID, flagConfig)
		if err != nil {
			return err
		}

		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}

		cfg := core.RuntimeConfig{
			ScreenW:  w,
			ScreenH:  h,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: scores unavailable: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		return tui.Run(game, store, cfg)
	},
}

// createGame builds a game instance, routing through the per-game config
// loader when a custom config path is given.
func createGame(gameID, configPath string) (registry.Game, error) {
	switch gameID {
	case "caverun":
		gc, err := config.LoadCaverun(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return caverun.NewWithConfig(gc), nil
	case "glide":
		gc, err := config.LoadGlide(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return glide.NewWithConfig(gc), nil
	default:
		return registry.Create(gameID)
	}
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game tuning file (YAML)")
}
