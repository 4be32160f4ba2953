package verification

import (
	"context"

	"orgdomain/pkg/domain"
)

//go:generate mockgen -package mockverification -source=interface.go -destination=mock/mockverification.go *
type Command interface {
	// UserVerify checks the TXT challenge of the claim identified by id on
	// behalf of userID.
	UserVerify(ctx context.Context, userID domain.UserID, id domain.OrganizationDomainID) (*domain.OrganizationDomain, error)
	// SystemVerify checks the TXT challenge of an already loaded claim on
	// behalf of the background verification job.
	SystemVerify(ctx context.Context, d domain.OrganizationDomain) (*domain.OrganizationDomain, error)
}
