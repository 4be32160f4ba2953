package storage

import (
	"context"

	"orgdomain/pkg/domain"
)

// EventStorage persists audit events.
type EventStorage interface {
	// StoreEvents inserts events. IDs and dates left empty are generated by
	// the backend.
	StoreEvents(ctx context.Context, events ...domain.Event) error
}
