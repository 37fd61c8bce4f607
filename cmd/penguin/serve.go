package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-flap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own menu and its own game. Connections share
only the in-memory scoreboard, which is lost when the server stops.
Sound is not played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.penguin/host_key

Examples:
  penguin serve                           # Listen on :23234 with auto-generated key
  penguin serve --ssh :2222               # Listen on port 2222
  penguin serve --host-key ./my_host_key  # Use specific host key
  penguin serve --difficulty hard         # Every session starts on hard
  penguin serve --max-sessions 20         # Turn away the 21st visitor

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent connections (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) {
	if _, err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MaxSessions = flagMaxSessions

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting penguin SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
