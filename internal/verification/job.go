package verification

import (
	"time"

	"orgdomain/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks the background worker to run SystemVerify on one claim.
type JobArgs struct {
	// DomainID is unique so that at most one job per claim is in flight.
	DomainID domain.OrganizationDomainID `json:"domainId" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// NewJobArgs builds the job for a claim with the retry and uniqueness
// settings of options.
func NewJobArgs(id domain.OrganizationDomainID, options Options) JobArgs {
	return JobArgs{
		DomainID:        id,
		maxAttempts:     options.MaxAttempts,
		uniqueJobPeriod: options.Interval,
	}
}

func (args JobArgs) Kind() string { return "VerifyOrganizationDomainJob" }

// InsertOpts keeps one job per claim in any non-final state. Completed jobs
// are also considered for uniqueJobPeriod so a sweep that runs early does not
// verify the same claim twice within one interval.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
