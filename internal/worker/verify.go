package worker

import (
	"context"
	"errors"
	"fmt"

	"orgdomain/internal/verification"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/serrors"
	"orgdomain/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// VerifyDomainWorker runs SystemVerify for one claim. Conflicts and missing
// claims cancel the job; DNS outages and
// storage failures are returned so river retries with backoff.
type VerifyDomainWorker struct {
	river.WorkerDefaults[verification.JobArgs]

	storage storage.OrganizationDomainStorage
	command verification.Command
}

func NewVerifyDomainWorker(s storage.OrganizationDomainStorage, command verification.Command) *VerifyDomainWorker {
	return &VerifyDomainWorker{storage: s, command: command}
}

func (w *VerifyDomainWorker) Work(ctx context.Context, job *river.Job[verification.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("organizationDomainId", job.Args.DomainID))

	d, err := w.storage.OrganizationDomainByID(ctx, job.Args.DomainID)
	if err != nil {
		return fmt.Errorf("could not load organization domain: %w", err)
	}
	if d == nil {
		logger.Warn(ctx, "organization domain vanished before verification")

		return river.JobCancel(serrors.With(serrors.ErrNotFound, "organization domain %s not found", job.Args.DomainID)) //nolint: wrapcheck
	}

	res, err := w.command.SystemVerify(ctx, *d)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in verifying organization domain", zap.Error(err))

		return fmt.Errorf("could not verify organization domain: %w", err)
	}

	logger.Info(ctx, "organization domain verification finished",
		zap.Bool("verified", res.IsVerified()),
		zap.Int("jobRunCount", res.JobRunCount))

	return nil
}
