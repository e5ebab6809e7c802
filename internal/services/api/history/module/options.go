package module

import (
	"strings"

	"sentilex/internal/platform/config"
	histrepo "sentilex/internal/services/api/history/repo"
	histsvc "sentilex/internal/services/api/history/service"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendValkey = "valkey"
)

// Options configures history storage
type Options struct {
	Backend   string
	Size      int
	Key       string
	TextLimit int
}

// FromConfig reads CORE_API_HISTORY_* and SERVICE_VALKEY_KEY style settings
// cfg is the CORE_API_ scoped view, kv the SERVICE_VALKEY_ view
func FromConfig(cfg, kv config.Conf) Options {
	return Options{
		Backend:   strings.ToLower(cfg.MayEnum("HISTORY_BACKEND", BackendMemory, BackendMemory, BackendValkey)),
		Size:      cfg.MayInt("HISTORY_SIZE", histrepo.DefaultCapacity),
		Key:       kv.MayString("KEY", histrepo.DefaultKey),
		TextLimit: cfg.MayInt("HISTORY_TEXT", histsvc.DefaultTextLimit),
	}
}
