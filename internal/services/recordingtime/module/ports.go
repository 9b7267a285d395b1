package module

import dom "sayitanyway/internal/services/recordingtime/domain"

// Ports holds the ports exposed by the recording time module
type Ports struct {
	Ledger dom.LedgerPort
	Pools  dom.PoolsPort
}
