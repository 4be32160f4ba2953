package worker

import (
	"context"
	"fmt"
	"time"

	"orgdomain/internal/verification"
	"orgdomain/pkg/domain"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/storage"

	"github.com/hashicorp/go-multierror"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// PendingDomainsJobArgs triggers a sweep over claims due for a background check.
type PendingDomainsJobArgs struct{}

func (PendingDomainsJobArgs) Kind() string { return "SweepPendingOrganizationDomainsJob" }

// InsertOpts allows a single sweep to be queued or running at any time.
func (PendingDomainsJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// PendingDomainsWorker pages through due claims and enqueues one
// verification job per claim. One failed enqueue does not stop the sweep.
type PendingDomainsWorker struct {
	river.WorkerDefaults[PendingDomainsJobArgs]

	storage storage.AllStorage
	options Options
	now     func() time.Time
}

func NewPendingDomainsWorker(s storage.AllStorage, options Options) *PendingDomainsWorker {
	return &PendingDomainsWorker{storage: s, options: options, now: time.Now}
}

func (w *PendingDomainsWorker) Work(ctx context.Context, job *river.Job[PendingDomainsJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	now := w.now()

	var (
		after                      *domain.OrganizationDomain
		errs                       *multierror.Error
		enqueued, existing, failed int
	)
	for {
		batch, err := w.storage.DuePendingOrganizationDomains(ctx,
			now,
			w.options.Verification.MaxJobRunCount,
			after,
			w.options.BatchSize)
		if err != nil {
			return fmt.Errorf("could not load due organization domains: %w", err)
		}

		for i := range batch {
			inserted, err := w.storage.AddJob(ctx, verification.NewJobArgs(batch[i].ID, w.options.Verification), nil)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("could not enqueue %s: %w", batch[i].ID, err))
				failed++

				continue
			}
			if inserted {
				enqueued++
			} else {
				existing++
			}
		}

		// a zero batch size loads every due claim in one query
		if w.options.BatchSize == 0 || uint(len(batch)) < w.options.BatchSize {
			break
		}
		after = &batch[len(batch)-1]
	}

	logger.Info(ctx, "pending organization domains swept",
		zap.Int("enqueued", enqueued),
		zap.Int("alreadyQueued", existing),
		zap.Int("failed", failed))

	if err := errs.ErrorOrNil(); err != nil {
		logger.Error(ctx, "some organization domains could not be enqueued", zap.Error(err))

		return err //nolint: wrapcheck
	}

	return nil
}
