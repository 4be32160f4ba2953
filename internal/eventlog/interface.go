// Package eventlog records audit events about organization domains.
package eventlog

import (
	"context"

	"orgdomain/pkg/domain"
)

//go:generate mockgen -package mockeventlog -source=interface.go -destination=mock/mockeventlog.go *
type Logger interface {
	// LogOrganizationDomainEvent records a single event of eventType about d,
	// attributed to actor.
	LogOrganizationDomainEvent(
		ctx context.Context,
		d domain.OrganizationDomain,
		eventType domain.EventType,
		actor domain.Actor,
	) error
}
