package domain

import "context"

// SinkPort is one durable destination for events
type SinkPort interface {
	// Name labels logs and metrics
	Name() string
	// EnsureSchema creates the destination table when missing
	EnsureSchema(ctx context.Context) error
	// Insert appends evs, duplicates by ID are ignored where the store allows it
	Insert(ctx context.Context, evs []Event) error
}
