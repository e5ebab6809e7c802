package module

import (
	"sentilex/internal/services/api/history/domain"
)

// Ports is the port set other modules may pull from history
type Ports struct {
	Service  domain.ServicePort
	Recorder domain.RecorderPort
}

// SinkPorts is injected with modkit.WithPorts to forward records to an archive
type SinkPorts struct {
	Sink domain.SinkPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
