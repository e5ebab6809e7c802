// Package modkit provides module wiring and core deps
package modkit

import (
	"sentilex/internal/platform/config"
	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/store"

	"github.com/jonboulle/clockwork"
	"github.com/valkey-io/valkey-go"
)

// Deps holds the shared dependencies handed to every module constructor
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// optional stores, nil when disabled
	PG store.TxRunner
	CH store.Clickhouse
	KV valkey.Client

	// Clock stamps records; nil means the real clock
	Clock clockwork.Clock
}

// DepsFromStore copies the enabled backends of s into a Deps
func DepsFromStore(log logger.Logger, cfg config.Conf, s *store.Store) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if s == nil {
		return d
	}
	d.PG, d.CH, d.KV = s.PG, s.CH, s.KV
	return d
}
