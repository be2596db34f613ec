package main

import (
	"context"
	"fmt"

	"github.com/jonathan/interview-prep/internal/backend"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the interview generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides APP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if err := cfg.RequireGeneration(); err != nil {
		return err
	}
	port := cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	ctx := context.Background()

	initializer := newInitializer()
	defer initializer.Close()

	// Fail before listening when the backend cannot be configured.
	if _, err := initializer.Get(ctx); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}

	llmConfig := llm.DefaultConfig().
		WithModel(cfg.Generation.Model).
		WithTemperature(cfg.Generation.Temperature)
	client, err := llm.NewClient(ctx, llmConfig, cfg.Generation.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close LLM client", zap.Error(err))
		}
	}()

	svc := interview.NewService(client, initializer, log,
		interview.WithGenerationTimeout(cfg.Generation.Timeout),
	)

	srv := server.New(server.Config{
		Port:        port,
		Environment: cfg.Env,
		Production:  cfg.IsProduction(),
		DebugEnv:    cfg.DebugEnabled(),
	}, svc, log)

	log.Info("starting interview API", zap.Stringer("config", cfg), zap.String("model", client.Model()))
	return srv.Start()
}

// newInitializer wires the backend clients to Postgres and session cookies.
func newInitializer() *backend.Initializer {
	return backend.NewInitializer(nil,
		backend.PostgresStore(cfg.DatabaseURL),
		backend.SessionAuth(cfg.Session.CookieName),
		log,
	)
}
