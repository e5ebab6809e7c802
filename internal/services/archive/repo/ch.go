package repo

import (
	"context"
	"fmt"

	"sentilex/internal/platform/store"
	"sentilex/internal/services/archive/domain"
)

// CHTable is the clickhouse events table
const CHTable = "analysis_events"

const chSchema = `
CREATE TABLE IF NOT EXISTS ` + CHTable + ` (
	id             String,
	created_at     DateTime64(3, 'UTC'),
	text           String,
	sentiment      LowCardinality(String),
	confidence     UInt8,
	score          Float64,
	word_count     UInt32,
	positive_words UInt32,
	negative_words UInt32,
	mode           LowCardinality(String)
) ENGINE = MergeTree
ORDER BY (created_at, id)`

// CH appends events to a MergeTree table with batch inserts
type CH struct{ ch store.Clickhouse }

// NewCH returns a clickhouse sink on c
func NewCH(c store.Clickhouse) *CH {
	if c == nil {
		panic("archive.CH requires a non nil Clickhouse")
	}
	return &CH{ch: c}
}

// Name implements domain.SinkPort
func (*CH) Name() string { return "ch" }

// EnsureSchema implements domain.SinkPort
func (c *CH) EnsureSchema(ctx context.Context) error {
	if err := c.ch.Exec(ctx, chSchema); err != nil {
		return fmt.Errorf("archive: ensure %s: %w", CHTable, err)
	}
	return nil
}

// Insert implements domain.SinkPort. Values are typed to the column definitions
func (c *CH) Insert(ctx context.Context, evs []domain.Event) error {
	return c.ch.Insert(ctx, CHTable, Rows(evs))
}

// Rows converts events to clickhouse rows in column order
func Rows(evs []domain.Event) [][]any {
	rows := make([][]any, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, []any{
			e.ID,
			e.CreatedAt,
			e.Text,
			e.Sentiment,
			clampUint8(e.Confidence),
			e.Score,
			uint32(max(e.WordCount, 0)),
			uint32(max(e.PositiveWords, 0)),
			uint32(max(e.NegativeWords, 0)),
			e.Mode,
		})
	}
	return rows
}

func clampUint8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
