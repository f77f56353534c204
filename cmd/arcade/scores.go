package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinwren/pocket-arcade/internal/registry"
	"github.com/tinwren/pocket-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Show the top scores recorded for a game.

Examples:
  arcade scores caverun
  arcade scores glide --db /tmp/scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := args[0]

		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game: %s (use 'arcade list' to see available games)", gameID)
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open scores database: %w", err)
		}
		defer store.Close()

		entries, err := store.TopScores(gameID, 10)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No scores recorded for %s yet.\n", gameID)
			return nil
		}

		fmt.Printf("Top scores for %s:\n\n", gameID)
		for i, e := range entries {
			fmt.Printf("  %2d. %6d   %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}

		best, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("\nBest: %d\n", best)
		}
		return nil
	},
}
