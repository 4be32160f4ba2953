package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"orgdomain/internal/api"
	"orgdomain/internal/api/handler/v1handler"
	"orgdomain/internal/config"
	"orgdomain/internal/verification"
	"orgdomain/internal/worker"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, cmd verification.Command) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Verifier: cmd},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, cmd verification.Command) func(ctx context.Context) {
	opts, err := worker.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create worker options", zap.Error(err))
	}

	logger.Info(ctx, "starting workers...")
	client, err := worker.Start(ctx, strg.Pool, worker.Deps{
		Storage: strg,
		Command: cmd,
	}, opts)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background verification workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			verifier := getVerificationCommand(ctx, cfg, strg)

			// river needs a context that outlives the signal one to drain jobs
			stopWorkers := setupWorkers(context.WithoutCancel(ctx), cfg, strg, verifier)
			stopWebserver := setupServer(ctx, cfg, verifier)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
