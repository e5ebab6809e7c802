package modkit

import (
	"testing"

	"sentilex/internal/platform/config"
	"sentilex/internal/platform/store"

	"github.com/rs/zerolog"
)

func TestDepsFromStore(t *testing.T) {
	t.Parallel()

	cfg := config.New().Prefix("CORE_API_")
	d := DepsFromStore(zerolog.Nop(), cfg, nil)
	if d.PG != nil || d.CH != nil || d.KV != nil {
		t.Fatalf("nil store should leave backends nil, got %+v", d)
	}
	if d.Cfg.MayString("HISTORY_BACKEND", "memory") != "memory" {
		t.Fatal("cfg not carried")
	}

	d = DepsFromStore(zerolog.Nop(), cfg, &store.Store{})
	if d.PG != nil || d.CH != nil || d.KV != nil || d.Clock != nil {
		t.Fatalf("empty store should leave backends nil, got %+v", d)
	}
}
