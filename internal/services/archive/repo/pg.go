// Package repo provides archive sinks over the platform stores
package repo

import (
	"context"
	"fmt"
	"strings"

	perr "sentilex/internal/platform/errors"
	"sentilex/internal/platform/store"
	"sentilex/internal/services/archive/domain"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id             uuid PRIMARY KEY,
	created_at     timestamptz NOT NULL,
	text           text NOT NULL,
	sentiment      text NOT NULL CHECK (sentiment IN ('positivo', 'negativo', 'neutro')),
	confidence     smallint NOT NULL CHECK (confidence BETWEEN 0 AND 100),
	score          double precision NOT NULL,
	word_count     integer NOT NULL,
	positive_words integer NOT NULL,
	negative_words integer NOT NULL,
	mode           text NOT NULL,
	analysis       jsonb NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

const pgCols = 11

// PG archives events in the analyses table
type PG struct{ db store.TxRunner }

// NewPG returns a postgres sink on db
func NewPG(db store.TxRunner) *PG {
	if db == nil {
		panic("archive.PG requires a non nil TxRunner")
	}
	return &PG{db: db}
}

// Name implements domain.SinkPort
func (*PG) Name() string { return "pg" }

// EnsureSchema implements domain.SinkPort
func (p *PG) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, pgSchema); err != nil {
		return perr.FromPostgres(err, "archive: ensure analyses table")
	}
	return nil
}

// Insert implements domain.SinkPort. Rows go in one statement inside a transaction
func (p *PG) Insert(ctx context.Context, evs []domain.Event) error {
	if len(evs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO analyses
		(id, created_at, text, sentiment, confidence, score, word_count,
		positive_words, negative_words, mode, analysis) VALUES `)

	args := make([]any, 0, len(evs)*pgCols)
	for i, e := range evs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*pgCols + 1
		fmt.Fprintf(&sb, "($%d::uuid,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d::jsonb)",
			base, base+1, base+2, base+3, base+4, base+5,
			base+6, base+7, base+8, base+9, base+10)

		args = append(args,
			e.ID, e.CreatedAt, e.Text, e.Sentiment, e.Confidence, e.Score,
			e.WordCount, e.PositiveWords, e.NegativeWords, e.Mode, string(e.Analysis),
		)
	}
	sb.WriteString(` ON CONFLICT (id) DO NOTHING`)

	err := p.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, sb.String(), args...)
		return err
	})
	if err != nil {
		return perr.FromPostgres(err, "archive: insert analyses")
	}
	return nil
}

// Count returns the number of archived rows
func (p *PG) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, `SELECT count(*) FROM analyses`).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "archive: count analyses")
	}
	return n, nil
}
