package module

import dom "sayitanyway/internal/services/blobs/domain"

// Ports holds the ports exposed by the blobs module
type Ports struct {
	Store dom.Port
}
