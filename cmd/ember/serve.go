package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ember-story/internal/games/campfire"
	"github.com/vovakirdan/ember-story/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and sit by the fire.

Each SSH connection gets its own game; resources are loaded once and
shared. Remote sessions are silent. Finished runs go to the server's
history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ember/host_key

Examples:
  ember serve                           # Listen on :23234 with auto-generated key
  ember serve --ssh :2222               # Listen on port 2222
  ember serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The server has no game on this terminal, so it logs here too.
	logger := log.Default()
	if logFile != nil {
		logger.SetOutput(io.MultiWriter(logFile, os.Stderr))
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	bundle, err := loadBundle(ctx, cfg)
	if err != nil {
		return err
	}

	newGame := func() (tui.Game, error) {
		return campfire.New(cfg, bundle, logger.WithPrefix("game"))
	}
	// Fail at startup rather than on the first connection.
	if _, err := newGame(); err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	var runs tui.RunRecorder
	if store := openStore(); store != nil {
		defer store.Close()
		runs = store
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = cfg.TickRate

	server, err := tui.NewSSHServer(srvCfg, newGame, runs, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting ember SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
