package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
	"github.com/zhouzirui/meeting-minutes/backend/internal/handler"
	summarymodel "github.com/zhouzirui/meeting-minutes/backend/internal/model/summary"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/ai"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/mail"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/summary"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		addr    string
	)

	cmd := &cobra.Command{
		Use:           "minutes-api",
		Short:         "Meeting summary backend: generate HTML summaries and email them",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, envFile, addr)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides PORT")
	return cmd
}

func run(ctx context.Context, envFile, addrOverride string) error {
	envErr := godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if addrOverride != "" {
		if cfg.Server.Addr, err = config.ParseAddr(addrOverride); err != nil {
			return err
		}
	}

	logger, closeLog := config.SetupLogger(cfg.Log)
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Warn("failed to load env file, continuing with system environment variables only", "file", envFile, "error", envErr)
	}

	// A nil provider makes generation report a configuration error per request.
	var provider summary.CompletionProvider
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI, logger)
		if err != nil {
			logger.Warn("failed to initialize summary provider, continuing without it", "provider", cfg.AI.Provider, "error", err)
		} else {
			provider = aiService
			logger.Info("summary provider initialized", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
		}
	} else {
		logger.Warn("summary provider credentials not configured, generation will fail", "provider", cfg.AI.Provider)
	}

	summaryService := summary.NewService(provider, summarymodel.NewMemoryStore(),
		summary.WithTimeout(cfg.AI.Timeout),
		summary.WithLogger(logger),
	)

	mailService := mail.NewService(cfg.Mail, mail.NewSMTPTransport, logger)
	if !mailService.Configured() {
		logger.Warn("mail relay not configured, sending will fail")
	}

	router := handler.NewRouter(handler.Services{
		Summary: summaryService,
		Email:   mailService,
		Health: func() handler.HealthStatus {
			return handler.HealthStatus{
				SummaryProvider: summaryService.Configured(),
				Mail:            mailService.Configured(),
			}
		},
	}, cfg.Server.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("meeting minutes backend listening", "addr", cfg.Server.Addr)
	if err := runServer(ctx, srv); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
