package module

import (
	"sentilex/internal/platform/config"
	svc "sentilex/internal/services/api/analyze/service"
)

// Options configures request limits and throttling
type Options struct {
	MaxText  int
	MaxBatch int

	// RateRPS <= 0 disables the throttle
	RateRPS   float64
	RateBurst int
}

// FromConfig reads CORE_API_MAX_* and CORE_API_RATE_* from a CORE_API_ scoped cfg
func FromConfig(cfg config.Conf) Options {
	return Options{
		MaxText:   cfg.MayInt("MAX_TEXT", svc.DefaultMaxText),
		MaxBatch:  cfg.MayInt("MAX_BATCH", svc.DefaultMaxBatch),
		RateRPS:   cfg.MayFloat64("RATE_RPS", 20),
		RateBurst: cfg.MayInt("RATE_BURST", 40),
	}
}
