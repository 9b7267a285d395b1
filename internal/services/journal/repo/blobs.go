// Package repo persists recipients and messages as two blob documents
package repo

import (
	"context"

	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	blobsdom "sayitanyway/internal/services/blobs/domain"
	dom "sayitanyway/internal/services/journal/domain"
)

// Blobs implements dom.Store on the blob port
type Blobs struct {
	blobs blobsdom.Port
	log   logger.Logger
}

var _ dom.Store = (*Blobs)(nil)

// NewBlobs binds the store to a blob port
func NewBlobs(blobs blobsdom.Port, log logger.Logger) *Blobs {
	return &Blobs{blobs: blobs, log: log}
}

// Recipients loads every recipient; unreadable documents read as empty
func (r *Blobs) Recipients(ctx context.Context) ([]dom.Recipient, error) {
	return loadList[dom.Recipient](ctx, r, blobsdom.KeyRecipients)
}

// SaveRecipients replaces the recipient list
func (r *Blobs) SaveRecipients(ctx context.Context, rs []dom.Recipient) error {
	return saveList(ctx, r, blobsdom.KeyRecipients, rs)
}

// Messages loads every message; unreadable documents read as empty
func (r *Blobs) Messages(ctx context.Context) ([]dom.Message, error) {
	return loadList[dom.Message](ctx, r, blobsdom.KeyMessages)
}

// SaveMessages replaces the message list
func (r *Blobs) SaveMessages(ctx context.Context, ms []dom.Message) error {
	return saveList(ctx, r, blobsdom.KeyMessages, ms)
}

func loadList[T any](ctx context.Context, r *Blobs, key string) ([]T, error) {
	v, ok, err := blobsdom.Load[[]T](ctx, r.blobs, key)
	if err != nil {
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			return nil, perr.WithOp(err, "journal.load")
		}
		r.log.Warn().Err(err).Str("key", key).Msg("journal document unreadable, treating as empty")
		return []T{}, nil
	}
	if !ok || v == nil {
		return []T{}, nil
	}
	return v, nil
}

func saveList[T any](ctx context.Context, r *Blobs, key string, v []T) error {
	if v == nil {
		v = []T{}
	}
	if err := blobsdom.Save(ctx, r.blobs, key, v); err != nil {
		return perr.WithOp(err, "journal.save")
	}
	return nil
}
