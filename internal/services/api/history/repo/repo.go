// Package repo provides history storage backends
package repo

import (
	"context"

	"sentilex/internal/services/api/history/domain"
)

// DefaultCapacity is the number of records kept when none is configured
const DefaultCapacity = 50

// Repo is a capped newest-first record store
type Repo interface {
	// Push inserts rec as the newest record, evicting the oldest past capacity
	Push(ctx context.Context, rec domain.Record) error
	// List returns all kept records, newest first
	List(ctx context.Context) ([]domain.Record, error)
	// Cap reports the capacity
	Cap() int
}
