package modkit

import (
	"sayitanyway/internal/modkit/repokit"
	"sayitanyway/internal/platform/config"
	"sayitanyway/internal/platform/logger"
	"sayitanyway/internal/platform/store"
	blobsdom "sayitanyway/internal/services/blobs/domain"
)

// Deps holds core dependencies passed to modules
// PG and KV are nil unless the matching backend was opened
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	KV    store.KV
	Blobs blobsdom.Port
}

// WithBlobs returns a copy of d carrying the blob store built from it
func (d Deps) WithBlobs(b blobsdom.Port) Deps {
	d.Blobs = b
	return d
}
