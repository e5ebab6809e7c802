package module

import (
	"sentilex/internal/services/api/analyze/domain"
	histdomain "sentilex/internal/services/api/history/domain"
)

// Ports is the port set other modules may pull from analyze
type Ports struct {
	Service domain.ServicePort
}

// RecorderPorts is injected with modkit.WithPorts, usually from the history module
type RecorderPorts struct {
	Recorder histdomain.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
