package module

import histdomain "sentilex/internal/services/api/history/domain"

// Ports holds the ports exposed by the archive module
type Ports struct {
	Sink histdomain.SinkPort
}
