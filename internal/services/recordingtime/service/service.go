// Package service implements the recording time ledger over the blob store
package service

import (
	"context"
	"sync"
	"time"

	"sayitanyway/internal/modkit"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	ptime "sayitanyway/internal/platform/time"
	blobsdom "sayitanyway/internal/services/blobs/domain"
	dom "sayitanyway/internal/services/recordingtime/domain"
)

// Config holds the pool sizes in seconds
type Config struct {
	FreeMonthly       int
	SubscriberMonthly int
	ExtraPack         int
}

// DefaultConfig is 5 free minutes, a subscriber hour and hour long extra packs
func DefaultConfig() Config {
	return Config{
		FreeMonthly:       dom.DefaultFreeMonthly,
		SubscriberMonthly: dom.DefaultSubscriberMonthly,
		ExtraPack:         dom.DefaultExtraPack,
	}
}

// Option customises a ledger
type Option func(*Svc)

// WithClock overrides time.Now for the monthly reset
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// Svc is the ledger. Mutations are serialized within a process
type Svc struct {
	mu    sync.Mutex
	blobs blobsdom.Port
	tier  dom.TierReader
	cfg   Config
	now   func() time.Time
	log   logger.Logger
}

var (
	_ dom.LedgerPort = (*Svc)(nil)
	_ dom.PoolsPort  = (*Svc)(nil)
)

// New constructs the ledger; a nil tier reader treats every user as Free
func New(deps modkit.Deps, tier dom.TierReader, cfg Config, opts ...Option) *Svc {
	s := &Svc{
		blobs: deps.Blobs,
		tier:  tier,
		cfg:   cfg,
		now:   time.Now,
		log:   deps.Log.With().Str("component", "ledger").Logger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetRecordingTime loads the record, creating defaults or applying the monthly reset as needed
func (s *Svc) GetRecordingTime(ctx context.Context) (dom.RecordingTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SaveRecordingTime persists rt verbatim
func (s *Svc) SaveRecordingTime(ctx context.Context, rt dom.RecordingTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, rt)
}

// DeductRecordingTime draws seconds from the pools in order, all or nothing.
// false means the balance could not cover it and nothing was written
func (s *Svc) DeductRecordingTime(ctx context.Context, seconds int) (bool, error) {
	if seconds < 0 {
		return false, perr.WithField(perr.InvalidArgf("seconds must be >= 0, got %d", seconds), "seconds")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	b, ok := rt.Balance().Deduct(seconds)
	if !ok {
		s.log.Info().Int("requested", seconds).Int("available", rt.Total()).Msg("deduction refused")
		return false, nil
	}
	if err := s.save(ctx, rt.WithBalance(b)); err != nil {
		return false, err
	}
	s.log.Debug().Int("seconds", seconds).Int("remaining", b.Total()).Msg("recording time deducted")
	return true, nil
}

// GetTotalRecordingTime sums the three pools
func (s *Svc) GetTotalRecordingTime(ctx context.Context) (int, error) {
	rt, err := s.GetRecordingTime(ctx)
	if err != nil {
		return 0, err
	}
	return rt.Total(), nil
}

// GetNextPoolInfo reports the pool the next deduction draws from, "None" when all are empty
func (s *Svc) GetNextPoolInfo(ctx context.Context) (dom.PoolInfo, error) {
	rt, err := s.GetRecordingTime(ctx)
	if err != nil {
		return dom.PoolInfo{}, err
	}
	return rt.Balance().Next(), nil
}

// HasRecordingTime reports whether the pools can cover seconds
func (s *Svc) HasRecordingTime(ctx context.Context, seconds int) (bool, error) {
	total, err := s.GetTotalRecordingTime(ctx)
	if err != nil {
		return false, err
	}
	return seconds >= 0 && total >= seconds, nil
}

// GrantSubscriberPool fills the subscriber pool for the current month
func (s *Svc) GrantSubscriberPool(ctx context.Context) error {
	return s.update(ctx, "subscriber pool granted", func(rt *dom.RecordingTime) {
		rt.SubscriberMonthly = s.cfg.SubscriberMonthly
	})
}

// RevokeSubscriberPool empties the subscriber pool
func (s *Svc) RevokeSubscriberPool(ctx context.Context) error {
	return s.update(ctx, "subscriber pool revoked", func(rt *dom.RecordingTime) {
		rt.SubscriberMonthly = 0
	})
}

// AddPurchasedExtra credits one extra pack; purchased time never expires
func (s *Svc) AddPurchasedExtra(ctx context.Context) error {
	return s.update(ctx, "extra time purchased", func(rt *dom.RecordingTime) {
		rt.PurchasedExtra += s.cfg.ExtraPack
	})
}

func (s *Svc) update(ctx context.Context, msg string, fn func(*dom.RecordingTime)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, err := s.load(ctx)
	if err != nil {
		return err
	}
	fn(&rt)
	if err := s.save(ctx, rt); err != nil {
		return err
	}
	s.log.Info().Int("subscriber", rt.SubscriberMonthly).Int("extra", rt.PurchasedExtra).Msg(msg)
	return nil
}

// load must be called with mu held
func (s *Svc) load(ctx context.Context) (dom.RecordingTime, error) {
	rt, ok, err := blobsdom.Load[dom.RecordingTime](ctx, s.blobs, blobsdom.KeyRecordingTime)
	if err != nil {
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			return dom.RecordingTime{}, perr.WithOp(err, "ledger.load")
		}
		s.log.Warn().Err(err).Msg("recording time record unreadable, starting over")
		ok = false
	}

	now := ptime.MonthOf(s.now())
	if !ok {
		rt = dom.RecordingTime{
			FreeMonthly:    s.cfg.FreeMonthly,
			LastResetMonth: now.Month,
			LastResetYear:  now.Year,
		}
		return rt, s.save(ctx, rt)
	}
	if rt.Stamp().Equal(now) {
		return rt, nil
	}

	sub, err := s.subscriberAllowance(ctx)
	if err != nil {
		return dom.RecordingTime{}, err
	}
	rt.FreeMonthly = s.cfg.FreeMonthly
	rt.SubscriberMonthly = sub
	rt.LastResetMonth, rt.LastResetYear = now.Month, now.Year
	if err := s.save(ctx, rt); err != nil {
		return dom.RecordingTime{}, err
	}
	s.log.Info().Int("month", now.Month).Int("year", now.Year).Int("subscriber", sub).Msg("monthly pools reset")
	return rt, nil
}

func (s *Svc) subscriberAllowance(ctx context.Context) (int, error) {
	if s.tier == nil {
		return 0, nil
	}
	t, err := s.tier.CurrentTier(ctx)
	if err != nil {
		return 0, perr.WithOp(err, "ledger.tier")
	}
	if t.Paid() {
		return s.cfg.SubscriberMonthly, nil
	}
	return 0, nil
}

func (s *Svc) save(ctx context.Context, rt dom.RecordingTime) error {
	if err := blobsdom.Save(ctx, s.blobs, blobsdom.KeyRecordingTime, rt); err != nil {
		return perr.WithOp(err, "ledger.save")
	}
	return nil
}
