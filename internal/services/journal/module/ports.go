package module

import dom "sayitanyway/internal/services/journal/domain"

// Ports holds the ports exposed by the journal module
type Ports struct {
	Journal dom.ServicePort
}
