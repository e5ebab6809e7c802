package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sentilex/internal/platform/testkit"
	"sentilex/internal/services/archive/domain"
)

type fakeCH struct {
	table string
	rows  [][]any
	execs []string
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.err
}
func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.err
}
func (f *fakeCH) Close() error { return nil }

func TestRows_ColumnOrderAndTypes(t *testing.T) {
	ts := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := Rows([]domain.Event{{
		ID: "a", CreatedAt: ts, Text: "bom", Sentiment: "positivo", Confidence: 300,
		Score: 0.5, WordCount: 3, PositiveWords: 1, NegativeWords: -1, Mode: "lexicon-only",
	}})
	if len(rows) != 1 || len(rows[0]) != 10 {
		t.Fatalf("rows = %v", rows)
	}
	r := rows[0]
	if r[0] != "a" || r[1] != ts || r[3] != "positivo" || r[9] != "lexicon-only" {
		t.Fatalf("row = %v", r)
	}
	if r[4] != uint8(255) {
		t.Fatalf("confidence = %#v, want clamped uint8", r[4])
	}
	if r[6] != uint32(3) || r[8] != uint32(0) {
		t.Fatalf("counts = %#v %#v", r[6], r[8])
	}
}

func TestCH_InsertAndSchema(t *testing.T) {
	f := &fakeCH{}
	c := NewCH(f)
	if c.Name() != "ch" {
		t.Fatalf("name = %q", c.Name())
	}
	if err := c.EnsureSchema(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(f.execs) != 1 || !strings.Contains(f.execs[0], "CREATE TABLE IF NOT EXISTS analysis_events") {
		t.Fatalf("execs = %v", f.execs)
	}
	if err := c.Insert(context.Background(), []domain.Event{{ID: "x"}}); err != nil {
		t.Fatal(err)
	}
	if f.table != CHTable || len(f.rows) != 1 {
		t.Fatalf("insert table=%q rows=%d", f.table, len(f.rows))
	}
}

func TestCH_SchemaErrorWrapped(t *testing.T) {
	c := NewCH(&fakeCH{err: errors.New("readonly")})
	err := c.EnsureSchema(context.Background())
	if err == nil || !strings.Contains(err.Error(), "analysis_events") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewSinks_NilPanics(t *testing.T) {
	testkit.MustPanic(t, func() { NewCH(nil) })
	testkit.MustPanic(t, func() { NewPG(nil) })
}
