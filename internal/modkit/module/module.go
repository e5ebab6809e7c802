// Package module holds the module contract and the port lookup helpers.
// It sits apart from modkit so port types can import it without cycles
package module

import (
	phttp "sentilex/internal/platform/net/http"
)

// Module is what the API mounts: named routes under a prefix plus a port bundle
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}
