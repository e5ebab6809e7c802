package module

import (
	"sort"
	"sync"
)

// process wide record of mounted modules and their ports
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register records a mounted module's ports under its name. Later calls replace earlier ones
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Names returns the registered module names, sorted
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	mu.RUnlock()
	sort.Strings(out)
	return out
}

// Reset clears the registry. Tests mounting the API call it in cleanup
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
