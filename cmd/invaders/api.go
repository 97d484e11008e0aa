package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/highscore"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the high score HTTP API",
	Long: `Serve the high score API backed by the --db database.

Routes:
  POST /api/sp-high-score   {"playerOneName": "...", "score": 123}
  GET  /api/sp-high-score?limit=10
  POST /api/mp-high-score   {"playerOneName": "...", "playerTwoName": "...", "score": 123}
  GET  /api/mp-high-score?limit=10

Examples:
  invaders api
  invaders api --addr :8081 --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":5000", "HTTP listen address")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	logger := newServerLogger("invaders-api")

	db, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer db.Close()

	mux := http.NewServeMux()
	mux.Handle(highscore.APIPrefix+"/", highscore.NewHandler(db, logger))
	srv := &http.Server{
		Addr:              flagAPIAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", flagAPIAddr, "db", flagDBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
