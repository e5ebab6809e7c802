// Package domain holds DTOs for history http and service contracts
package domain

import (
	"time"

	"sentilex/internal/core/sentiment"
)

// Record is one stored analysis. Text is already truncated for display
type Record struct {
	ID        string           `json:"id" example:"4b8f0a0e-6c3a-4a0f-9d7c-2f9e0f3b1a11"`
	Text      string           `json:"text" example:"o produto é bom e o atendimento foi ótimo"`
	Result    sentiment.Result `json:"result"`
	Timestamp time.Time        `json:"timestamp" example:"2025-08-01T12:00:00Z"`
}

// ListItem is the compact history row served to clients
type ListItem struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Sentiment  sentiment.Label `json:"sentiment" example:"positivo"`
	Confidence int             `json:"confidence" example:"100"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Breakdown counts records per label
type Breakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Stats aggregates the current history window
type Stats struct {
	TotalAnalyses      int        `json:"total_analyses" example:"12"`
	SentimentBreakdown Breakdown  `json:"sentiment_breakdown"`
	AverageConfidence  int        `json:"average_confidence" example:"74"`
	LastAnalysis       *time.Time `json:"last_analysis"`
}

// Item projects a Record to its list form
func (r Record) Item() ListItem {
	return ListItem{
		ID:         r.ID,
		Text:       r.Text,
		Sentiment:  r.Result.Sentiment,
		Confidence: r.Result.Confidence,
		Timestamp:  r.Timestamp,
	}
}
