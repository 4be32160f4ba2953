package main

import (
	"context"

	"orgdomain/internal/config"
	"orgdomain/internal/verification"
	"orgdomain/pkg/dnsresolver/dnsclient"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/metrics"
	"orgdomain/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getVerificationCommand wires the verification command to its storage, the
// DNS client and the metrics instruments.
func getVerificationCommand(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) verification.Command {
	resolver, err := dnsclient.New(dnsclient.Options{
		Nameservers: cfg.DNS.Nameservers,
		Timeout:     cfg.DNS.Timeout,
		TCPFallback: cfg.DNS.TCPFallback,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create dns client", zap.Error(err))
	}

	mp, err := metrics.Setup(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
	}
	instruments, err := metrics.NewVerification(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create verification metrics", zap.Error(err))
	}

	return verification.New(verification.Deps{
		Storage:  strg,
		Resolver: resolver,
		Metrics:  instruments,
	}, verification.NewOptions(cfg))
}
