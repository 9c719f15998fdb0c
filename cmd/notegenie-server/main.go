package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/config"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/database"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/identity"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference/openai"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "notegenie-server",
		Short:         "Quiz and flashcard generation HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	defer func() {
		_ = openaiClient.Close()
	}()

	artifacts := artifact.NewRepository(db)
	handler := server.NewHandler(
		generation.NewGenerator(openaiClient, artifacts),
		progress.NewService(artifacts, progress.NewRepository(db)),
		artifacts,
		identity.NewDBProvider(db),
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORS(h2c.NewHandler(handler.Routes(), &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
