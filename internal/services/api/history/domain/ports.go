package domain

import (
	"context"

	"sentilex/internal/core/sentiment"
)

// RecorderPort stores a finished analysis, consumed by the analyze module
type RecorderPort interface {
	Record(ctx context.Context, text string, res sentiment.Result) (Record, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	RecorderPort
	List(ctx context.Context) ([]ListItem, error)
	Stats(ctx context.Context) (Stats, error)
}

// SinkPort receives every recorded analysis for durable storage
type SinkPort interface {
	Write(ctx context.Context, rec Record)
}
