package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a TxStorage the job is
// inserted as part of the transaction.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. It returns
	// false without error when a unique job with the same key already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
