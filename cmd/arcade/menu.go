package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/platform/tui"
	"github.com/tinwren/pocket-arcade/internal/registry"
	"github.com/tinwren/pocket-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Open an interactive menu to pick a game. After a game ends you
return to the menu. Press Tab in the menu to browse high scores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		for {
			result, err := tui.RunMenu(store, cfg)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}

			if result.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}

			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}

			gameCfg := result.Config
			gameCfg.Seed = time.Now().UnixNano()
			if err := tui.Run(game, store, gameCfg); err != nil {
				return err
			}
		}
	},
}
