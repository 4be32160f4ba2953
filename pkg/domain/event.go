package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of audit event.
type EventType int

const (
	// EventTypeOrganizationDomainAdded is recorded when a domain is claimed.
	EventTypeOrganizationDomainAdded EventType = 2000
	// EventTypeOrganizationDomainRemoved is recorded when a claim is removed.
	EventTypeOrganizationDomainRemoved EventType = 2001
	// EventTypeOrganizationDomainVerified is recorded when the TXT challenge was found.
	EventTypeOrganizationDomainVerified EventType = 2002
	// EventTypeOrganizationDomainNotVerified is recorded when the TXT challenge was absent.
	EventTypeOrganizationDomainNotVerified EventType = 2003
)

func (t EventType) String() string {
	switch t {
	case EventTypeOrganizationDomainAdded:
		return "OrganizationDomain_Added"
	case EventTypeOrganizationDomainRemoved:
		return "OrganizationDomain_Removed"
	case EventTypeOrganizationDomainVerified:
		return "OrganizationDomain_Verified"
	case EventTypeOrganizationDomainNotVerified:
		return "OrganizationDomain_NotVerified"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// EventSystemUser names a non-human identity that events can be attributed to.
type EventSystemUser int

const (
	EventSystemUserUnknown            EventSystemUser = 0
	EventSystemUserSCIM               EventSystemUser = 1
	EventSystemUserDomainVerification EventSystemUser = 2
	EventSystemUserPublicAPI          EventSystemUser = 3
)

func (s EventSystemUser) String() string {
	switch s {
	case EventSystemUserSCIM:
		return "SCIM"
	case EventSystemUserDomainVerification:
		return "DomainVerification"
	case EventSystemUserPublicAPI:
		return "PublicApi"
	default:
		return "Unknown"
	}
}

// EventID uniquely identifies a stored audit event.
type EventID uuid.UUID

// Event is a domain-scoped audit record.
type Event struct {
	ID             EventID
	Type           EventType
	OrganizationID OrganizationID
	DomainName     string
	// ActingUserID is set when a human triggered the action.
	ActingUserID *UserID
	// SystemUser is set when a background process triggered the action.
	SystemUser EventSystemUser
	Date       time.Time
}
