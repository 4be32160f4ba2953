package domain

import (
	"time"

	"github.com/google/uuid"
)

// Messages of the conflicts a verification can end with. They are shown to
// end users as is.
const (
	MsgDomainAlreadyVerified = "Domain has already been verified."
	MsgDomainNotAvailable    = "The domain is not available to be claimed."
)

// OrganizationDomainID uniquely identifies a domain claim.
type OrganizationDomainID uuid.UUID

// String returns the canonical UUID representation.
func (id OrganizationDomainID) String() string { return uuid.UUID(id).String() }

func (id OrganizationDomainID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *OrganizationDomainID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseOrganizationDomainID parses the canonical UUID form of an ID.
func ParseOrganizationDomainID(s string) (OrganizationDomainID, error) {
	id, err := uuid.Parse(s)

	return OrganizationDomainID(id), err //nolint: wrapcheck
}

// OrganizationDomain is a domain name claimed by an organization. The claim
// becomes verified once the TXT challenge has been found in DNS.
type OrganizationDomain struct {
	// ID is the unique identifier of the claim.
	ID OrganizationDomainID `json:"id"`
	// OrganizationID is the organization that owns the claim.
	OrganizationID OrganizationID `json:"organizationId"`

	// DomainName is the claimed domain. Comparisons are case-insensitive.
	DomainName string `json:"domainName"`
	// Txt is the challenge token expected as a TXT record value on DomainName.
	Txt string `json:"txt"`

	// CreationDate is when the claim was created.
	CreationDate time.Time `json:"creationDate"`
	// VerifiedDate is set once ownership has been proven and never cleared.
	VerifiedDate *time.Time `json:"verifiedDate,omitempty"`
	// LastCheckedDate is when DNS was last consulted for this claim.
	LastCheckedDate *time.Time `json:"lastCheckedDate,omitempty"`
	// NextRunDate is the earliest time the background job retries the claim.
	NextRunDate time.Time `json:"nextRunDate"`
	// JobRunCount counts background verification attempts.
	JobRunCount int `json:"jobRunCount"`
}

// IsVerified reports whether ownership of the domain has been proven.
func (d *OrganizationDomain) IsVerified() bool {
	return d.VerifiedDate != nil
}

// SetVerifiedDate marks the claim as verified at now. Verification is a
// one-way transition, so an existing date is kept.
func (d *OrganizationDomain) SetVerifiedDate(now time.Time) {
	if d.VerifiedDate != nil {
		return
	}
	t := now.UTC()
	d.VerifiedDate = &t
}

// SetLastCheckedDate records when DNS was consulted.
func (d *OrganizationDomain) SetLastCheckedDate(now time.Time) {
	t := now.UTC()
	d.LastCheckedDate = &t
}

// SetNextRunDate schedules the next background attempt interval after now.
func (d *OrganizationDomain) SetNextRunDate(now time.Time, interval time.Duration) {
	d.NextRunDate = now.UTC().Add(interval)
}

// IncrementJobRunCount bumps the background attempt counter. The counter
// saturates at maxRuns; a non-positive maxRuns disables the cap.
func (d *OrganizationDomain) IncrementJobRunCount(maxRuns int) {
	if maxRuns > 0 && d.JobRunCount >= maxRuns {
		return
	}
	d.JobRunCount++
}
