package domain

import (
	"context"

	"sentilex/internal/core/sentiment"
)

// Analyzer scores text, satisfied by *sentiment.Scorer
type Analyzer interface {
	Analyze(text string) sentiment.Result
	Mode() sentiment.Mode
}

// ServicePort is the interface implemented by the analyze service
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error)
	Batch(ctx context.Context, in BatchInput) ([]BatchItem, error)
}
