package storage

import (
	"context"
	"time"

	"orgdomain/pkg/domain"
)

// OrganizationDomainStorage persists organization domain claims.
type OrganizationDomainStorage interface {
	// OrganizationDomainByID returns the claim with the given ID, or nil when
	// it does not exist.
	OrganizationDomainByID(ctx context.Context, id domain.OrganizationDomainID) (*domain.OrganizationDomain, error)
	// ClaimedOrganizationDomainsByName returns every verified claim for the
	// given domain name, compared case-insensitively, across all organizations.
	ClaimedOrganizationDomainsByName(ctx context.Context, domainName string) ([]domain.OrganizationDomain, error)
	// StoreOrganizationDomain inserts a new claim and returns the stored row.
	StoreOrganizationDomain(ctx context.Context, d domain.OrganizationDomain) (*domain.OrganizationDomain, error)
	// ReplaceOrganizationDomain overwrites every mutable field of an existing
	// claim with the values of d. It returns a serrors.ErrNotFound error when
	// the claim does not exist and a serrors.ErrConflict error when the write
	// would leave two verified claims for the same domain name.
	ReplaceOrganizationDomain(ctx context.Context, d domain.OrganizationDomain) error
	// IncrementOrganizationDomainJobRunCount bumps the job run count of a claim,
	// saturating at maxJobRunCount, and moves its next run date.
	IncrementOrganizationDomainJobRunCount(
		ctx context.Context,
		id domain.OrganizationDomainID,
		maxJobRunCount int,
		nextRunDate time.Time,
	) error
	// DuePendingOrganizationDomains returns unverified claims whose next run
	// date is not after now and whose job run count is below maxJobRunCount,
	// ordered by next run date then ID. When after is set, only claims
	// ordered after it are returned, so callers can page through the set.
	DuePendingOrganizationDomains(
		ctx context.Context,
		now time.Time,
		maxJobRunCount int,
		after *domain.OrganizationDomain,
		limit uint,
	) ([]domain.OrganizationDomain, error)
}
