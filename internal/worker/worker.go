// Package worker runs the background verification of pending organization
// domains on river.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"orgdomain/internal/config"
	"orgdomain/internal/verification"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background workers.
type Options struct {
	// MaxWorkers bounds concurrently running jobs.
	MaxWorkers int
	// Schedule drives the periodic sweep.
	Schedule cron.Schedule
	// BatchSize is the page size of the sweep.
	BatchSize uint
	// Verification is passed to the verification jobs the sweep enqueues.
	Verification verification.Options
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) (Options, error) {
	schedule, err := cron.ParseStandard(cfg.DomainVerification.Schedule)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse sweep schedule: %w", err)
	}

	return Options{
		MaxWorkers:   cfg.DomainVerification.MaxWorkers,
		Schedule:     schedule,
		BatchSize:    cfg.DomainVerification.BatchSize,
		Verification: verification.NewOptions(cfg),
	}, nil
}

// Deps are the collaborators of the workers.
type Deps struct {
	Storage storage.Storage
	Command verification.Command
}

// Register adds every worker to workers.
func Register(workers *river.Workers, deps Deps, options Options) {
	river.AddWorker(workers, NewVerifyDomainWorker(deps.Storage, deps.Command))
	river.AddWorker(workers, NewPendingDomainsWorker(deps.Storage, options))
}

// Start creates and starts a river client running the verification workers
// and the periodic sweep.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	Register(workers, deps, options)

	sweep := river.NewPeriodicJob(options.Schedule,
		func() (river.JobArgs, *river.InsertOpts) {
			return PendingDomainsJobArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true})

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: []*river.PeriodicJob{sweep},
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
