package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purrdle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Purrdle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the mode menu.
The vocabulary and history are shared by every connection.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.purrdle/host_key

Examples:
  purrdle serve                           # Listen on :23234 with auto-generated key
  purrdle serve --ssh :2222               # Listen on port 2222
  purrdle serve --host-key ./my_host_key  # Use specific host key
  purrdle serve --db ./purrdle.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, needs{words: true, vocab: true, history: true})
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := tui.SSHServerConfig{
		Address:     e.cfg.Server.Address,
		HostKeyPath: expandHome(e.cfg.Server.HostKey),
		IdleTimeout: e.cfg.Server.IdleTimeout,
		TickRate:    e.cfg.Game.FPS,
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = expandHome(flagHostKey)
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, e.services())
	if err != nil {
		return err
	}

	fmt.Printf("Starting Purrdle SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
