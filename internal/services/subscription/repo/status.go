// Package repo persists subscription status in the blob store
package repo

import (
	"context"

	"sayitanyway/internal/core/entitlement"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	blobsdom "sayitanyway/internal/services/blobs/domain"
	dom "sayitanyway/internal/services/subscription/domain"
)

// Status reads and writes the subscription_status document
type Status struct {
	blobs blobsdom.Port
	log   logger.Logger
}

var _ dom.StatusStore = (*Status)(nil)

// NewStatus binds the store to a blob port
func NewStatus(blobs blobsdom.Port, log logger.Logger) *Status {
	return &Status{blobs: blobs, log: log}
}

// GetStatus returns the stored status; absent or unreadable documents are Free
func (r *Status) GetStatus(ctx context.Context) (dom.Status, error) {
	s, ok, err := blobsdom.Load[dom.Status](ctx, r.blobs, blobsdom.KeySubscriptionStatus)
	if err != nil {
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			return dom.Status{}, perr.WithOp(err, "subscription.get")
		}
		r.log.Warn().Err(err).Msg("subscription status unreadable, treating as free")
		return dom.FreeStatus(), nil
	}
	if !ok {
		return dom.FreeStatus(), nil
	}
	if !s.Tier.Valid() {
		s.Tier = entitlement.Parse(string(s.Tier))
	}
	return s, nil
}

// SaveStatus persists s verbatim
func (r *Status) SaveStatus(ctx context.Context, s dom.Status) error {
	if err := blobsdom.Save(ctx, r.blobs, blobsdom.KeySubscriptionStatus, s); err != nil {
		return perr.WithOp(err, "subscription.save")
	}
	return nil
}

// CurrentTier implements the ledger's TierReader
func (r *Status) CurrentTier(ctx context.Context) (entitlement.Tier, error) {
	s, err := r.GetStatus(ctx)
	if err != nil {
		return entitlement.TierFree, err
	}
	return s.Tier, nil
}
