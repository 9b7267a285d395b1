// Package service implements the subscription state machine
package service

import (
	"context"
	"sync"
	"time"

	"sayitanyway/internal/core/entitlement"
	"sayitanyway/internal/modkit"
	"sayitanyway/internal/platform/logger"
	rtdom "sayitanyway/internal/services/recordingtime/domain"
	dom "sayitanyway/internal/services/subscription/domain"
)

// Config holds the access code allow-list
type Config struct {
	AccessCodes []string
}

// Option customises the service
type Option func(*Svc)

// WithClock overrides time.Now for activation and unlock stamps
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// Svc moves the user between Free, Subscriber and Subscriber (Unlocked)
// and keeps the ledger's subscriber pool in step
type Svc struct {
	mu     sync.Mutex
	status dom.StatusStore
	pools  rtdom.PoolsPort
	cfg    Config
	now    func() time.Time
	log    logger.Logger
}

var _ dom.ServicePort = (*Svc)(nil)

// New constructs the service
func New(deps modkit.Deps, needs dom.Needs, cfg Config, opts ...Option) *Svc {
	if len(cfg.AccessCodes) == 0 {
		cfg.AccessCodes = dom.DefaultAccessCodes
	}
	s := &Svc{
		status: needs.Status,
		pools:  needs.Pools,
		cfg:    cfg,
		now:    time.Now,
		log:    deps.Log.With().Str("component", "subscription").Logger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetStatus returns the stored status, Free when absent
func (s *Svc) GetStatus(ctx context.Context) (dom.Status, error) { return s.status.GetStatus(ctx) }

// SaveStatus persists st verbatim
func (s *Svc) SaveStatus(ctx context.Context, st dom.Status) error {
	return s.status.SaveStatus(ctx, st)
}

// CurrentTier reports the tier from the stored status
func (s *Svc) CurrentTier(ctx context.Context) (entitlement.Tier, error) {
	return s.status.CurrentTier(ctx)
}

// ActivateStoreSubscription records a store purchase and grants the subscriber pool.
// An unlocked status keeps its tier but still records the store subscription
func (s *Svc) ActivateStoreSubscription(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.status.GetStatus(ctx)
	if err != nil {
		return err
	}
	if cur.IsUnlocked {
		cur.StoreSubscriptionActive = true
		cur.SubscriptionActivatedAt = s.now().UnixMilli()
		if err := s.status.SaveStatus(ctx, cur); err != nil {
			return err
		}
		s.log.Info().Msg("store subscription activated while unlocked, tier kept")
		return nil
	}
	next := dom.Status{
		Tier:                    entitlement.TierSubscriber,
		StoreSubscriptionActive: true,
		SubscriptionActivatedAt: s.now().UnixMilli(),
	}
	if err := s.status.SaveStatus(ctx, next); err != nil {
		return err
	}
	if err := s.pools.GrantSubscriberPool(ctx); err != nil {
		return err
	}
	s.log.Info().Str("tier", string(next.Tier)).Msg("store subscription activated")
	return nil
}

// DeactivateStoreSubscription drops a store subscriber to Free and revokes the pool.
// It never clears a manual unlock, only the store flag under it
func (s *Svc) DeactivateStoreSubscription(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.status.GetStatus(ctx)
	if err != nil {
		return err
	}
	if cur.IsUnlocked {
		cur.StoreSubscriptionActive = false
		cur.SubscriptionActivatedAt = 0
		if err := s.status.SaveStatus(ctx, cur); err != nil {
			return err
		}
		s.log.Info().Msg("store subscription ended, unlock kept")
		return nil
	}
	if err := s.status.SaveStatus(ctx, dom.FreeStatus()); err != nil {
		return err
	}
	if err := s.pools.RevokeSubscriberPool(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("store subscription deactivated")
	return nil
}

// RedeemAccessCode unlocks subscriber entitlements for an allow-listed code.
// An unknown code returns false and writes nothing
func (s *Svc) RedeemAccessCode(ctx context.Context, code string) (bool, error) {
	if !dom.ValidateAccessCode(code, s.cfg.AccessCodes) {
		s.log.Info().Msg("access code rejected")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.status.GetStatus(ctx)
	if err != nil {
		return false, err
	}
	cur.Tier = entitlement.TierUnlocked
	cur.IsUnlocked = true
	cur.UnlockedAt = s.now().UnixMilli()
	if err := s.status.SaveStatus(ctx, cur); err != nil {
		return false, err
	}
	if err := s.pools.GrantSubscriberPool(ctx); err != nil {
		return false, err
	}
	s.log.Info().Str("tier", string(cur.Tier)).Msg("access code redeemed")
	return true, nil
}

// ClearUnlock removes a manual unlock. A still active store subscription keeps
// the user on Subscriber; otherwise they drop to Free and lose the pool
func (s *Svc) ClearUnlock(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.status.GetStatus(ctx)
	if err != nil {
		return err
	}
	if !cur.IsUnlocked {
		return nil
	}
	cur.IsUnlocked = false
	cur.UnlockedAt = 0
	cur.Tier = entitlement.TierFree
	if cur.StoreSubscriptionActive {
		cur.Tier = entitlement.TierSubscriber
	}
	if err := s.status.SaveStatus(ctx, cur); err != nil {
		return err
	}
	if cur.Tier == entitlement.TierFree {
		if err := s.pools.RevokeSubscriberPool(ctx); err != nil {
			return err
		}
	}
	s.log.Info().Str("tier", string(cur.Tier)).Msg("unlock cleared")
	return nil
}

// PurchaseExtraTime credits one extra recording time pack
func (s *Svc) PurchaseExtraTime(ctx context.Context) error {
	if err := s.pools.AddPurchasedExtra(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("extra recording time purchased")
	return nil
}

// ShouldShowAds applies the ad rules to the current tier
func (s *Svc) ShouldShowAds(ctx context.Context, screen string) (bool, error) {
	t, err := s.status.CurrentTier(ctx)
	if err != nil {
		return false, err
	}
	return dom.ShouldShowAds(t, screen), nil
}
