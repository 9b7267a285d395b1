package module

import dom "sayitanyway/internal/services/subscription/domain"

// Ports holds the ports exposed by the subscription module
type Ports struct {
	Subscription dom.ServicePort
}
