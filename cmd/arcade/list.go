package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinwren/pocket-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Long:  `Show all games registered in this build, with their IDs and titles.`,
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games available.")
			return
		}

		fmt.Println("Available games:")
		fmt.Println()
		for _, g := range games {
			fmt.Printf("  %-12s %s\n", g.ID, g.Title)
		}
		fmt.Println()
		fmt.Println("Run 'arcade play <game>' to start one.")
	},
}
