package eventlog

import (
	"context"
	"fmt"
	"time"

	"orgdomain/pkg/domain"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/storage"

	"go.uber.org/zap"
)

type eventLogger struct {
	storage storage.EventStorage
	now     func() time.Time
}

// New returns a Logger that persists events through s and mirrors them to the
// structured log.
func New(s storage.EventStorage) Logger {
	return &eventLogger{storage: s, now: time.Now}
}

func (l *eventLogger) LogOrganizationDomainEvent(
	ctx context.Context,
	d domain.OrganizationDomain,
	eventType domain.EventType,
	actor domain.Actor,
) error {
	event := domain.Event{
		Type:           eventType,
		OrganizationID: d.OrganizationID,
		DomainName:     d.DomainName,
		ActingUserID:   actor.UserID(),
		Date:           l.now().UTC(),
	}
	if actor.IsSystem() {
		event.SystemUser = actor.SystemUser()
	}

	if err := l.storage.StoreEvents(ctx, event); err != nil {
		return fmt.Errorf("could not store %s event: %w", eventType, err)
	}

	logger.Info(ctx, "organization domain event",
		zap.Stringer("type", eventType),
		zap.Stringer("organizationId", d.OrganizationID),
		zap.Stringer("organizationDomainId", d.ID),
		zap.String("domainName", d.DomainName),
		zap.Stringer("actor", actor))

	return nil
}
