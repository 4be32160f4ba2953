// Package storage defines the persistence interfaces of the service and the
// transaction boundaries around them. Backends live in sub-packages.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every capability a storage handle offers, whether or not
// it is bound to a transaction.
type AllStorage interface {
	OrganizationDomainStorage
	EventStorage
	JobStorage
}

// TxStorage is a storage handle bound to a transaction. It is unusable after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle that can start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
