// Package domain holds archive event types and sink contracts
package domain

import (
	"encoding/json"
	"time"

	histdomain "sentilex/internal/services/api/history/domain"
)

// Event is the flat archived form of a history record
type Event struct {
	ID            string
	CreatedAt     time.Time
	Text          string
	Sentiment     string
	Confidence    int
	Score         float64
	WordCount     int
	PositiveWords int
	NegativeWords int
	Mode          string

	// Analysis is the JSON encoded diagnostics block
	Analysis json.RawMessage
}

// EventFrom flattens rec
func EventFrom(rec histdomain.Record) Event {
	res := rec.Result
	diag, err := json.Marshal(res.Analysis)
	if err != nil {
		diag = json.RawMessage("{}")
	}
	return Event{
		ID:            rec.ID,
		CreatedAt:     rec.Timestamp.UTC(),
		Text:          rec.Text,
		Sentiment:     string(res.Sentiment),
		Confidence:    res.Confidence,
		Score:         res.Score,
		WordCount:     res.WordCount,
		PositiveWords: res.PositiveWords,
		NegativeWords: res.NegativeWords,
		Mode:          string(res.Analysis.Mode),
		Analysis:      diag,
	}
}
