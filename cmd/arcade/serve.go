package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinwren/pocket-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeDB     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play over the network.

Connect with: ssh -p <port> <host>

Examples:
  arcade serve
  arcade serve --ssh :2222
  arcade serve --ssh :2222 --db /var/lib/arcade/scores.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.DBPath = flagServeDB
		cfg.IdleTimeout = flagIdleTimeout

		srv, err := tui.NewSSHServer(cfg)
		if err != nil {
			return fmt.Errorf("create SSH server: %w", err)
		}

		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagServeDB, "db", "~/.pocket-arcade/scores.db", "Path to scores database")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle connections after this duration")
}
