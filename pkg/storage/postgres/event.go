package postgres

import (
	"context"
	"fmt"
	"time"

	"orgdomain/pkg/domain"

	"github.com/google/uuid"
)

const (
	eventsTable = "events"
)

func (p *PgSQL) StoreEvents(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]PgEvent, len(events))
	for i, e := range events {
		if e.ID == (domain.EventID{}) {
			e.ID = domain.EventID(uuid.New())
		}
		if e.Date.IsZero() {
			e.Date = now
		}
		rows[i].FromDomain(e)
	}

	if _, err := p.Builder.Insert(eventsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store events into pg: %w", err)
	}

	return nil
}
