package module

import (
	"time"

	"sentilex/internal/platform/config"
	"sentilex/internal/services/archive/service"
)

// Options controls the archive writer
type Options struct {
	// Enabled false keeps the writer empty even when stores are configured
	Enabled bool
	// EnsureSchema creates missing tables at startup
	EnsureSchema bool
	Timeout      time.Duration
}

// FromConfig reads with ARCHIVE_ prefix from a CORE_API_ scoped cfg
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ARCHIVE_")
	return Options{
		Enabled:      c.MayBool("ENABLED", true),
		EnsureSchema: c.MayBool("ENSURE_SCHEMA", true),
		Timeout:      c.MayDuration("TIMEOUT", service.DefaultTimeout),
	}
}
