package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"showfolio/internal/db"
	"showfolio/internal/events"
	"showfolio/internal/logging"
	"showfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the live portfolio server",
	Long: `Serves the portfolio over HTTP: server-rendered pages, the JSON API,
visitor uploads, and the event websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		logger := logging.New(cfg.LogFile, verbose)
		defer logger.Sync()

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "showfolio.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		bus := events.NewBus()
		defer bus.Close()

		srv, err := server.New(cfg, logger, database, bus)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start(ctx) }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
