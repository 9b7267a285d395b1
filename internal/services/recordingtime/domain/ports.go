// Package domain defines the recording time ledger types and ports
package domain

import (
	"context"

	"sayitanyway/internal/core/entitlement"
	"sayitanyway/internal/core/quota"
	ptime "sayitanyway/internal/platform/time"
)

// Pool names in draw order
const (
	PoolFreeMonthly       = "Free Monthly"
	PoolSubscriberMonthly = "Subscriber Monthly"
	PoolPurchasedExtra    = "Purchased Extra"
)

// Ledger defaults in seconds
const (
	DefaultFreeMonthly       = 300
	DefaultSubscriberMonthly = 3600
	DefaultExtraPack         = 3600
)

// RecordingTime is the persisted ledger record
type RecordingTime struct {
	FreeMonthly       int `json:"freeMonthly"`
	SubscriberMonthly int `json:"subscriberMonthly"`
	PurchasedExtra    int `json:"purchasedExtra"`
	LastResetMonth    int `json:"lastResetMonth"` // 1-12
	LastResetYear     int `json:"lastResetYear"`
}

// PoolInfo is the pool the next deduction draws from
type PoolInfo = quota.Pool

// Balance lists the pools in draw order
func (r RecordingTime) Balance() quota.Balance {
	return quota.Balance{
		{Name: PoolFreeMonthly, Seconds: r.FreeMonthly},
		{Name: PoolSubscriberMonthly, Seconds: r.SubscriberMonthly},
		{Name: PoolPurchasedExtra, Seconds: r.PurchasedExtra},
	}
}

// WithBalance copies pool values from b back onto the record, keeping the reset stamp
func (r RecordingTime) WithBalance(b quota.Balance) RecordingTime {
	r.FreeMonthly = b.Seconds(PoolFreeMonthly)
	r.SubscriberMonthly = b.Seconds(PoolSubscriberMonthly)
	r.PurchasedExtra = b.Seconds(PoolPurchasedExtra)
	return r
}

// Total is the sum of all pools
func (r RecordingTime) Total() int { return r.Balance().Total() }

// Stamp is the month the pools were last reset
func (r RecordingTime) Stamp() ptime.MonthKey {
	return ptime.MonthKey{Month: r.LastResetMonth, Year: r.LastResetYear}
}

// TierReader reports the current subscription tier
type TierReader interface {
	CurrentTier(ctx context.Context) (entitlement.Tier, error)
}

// Needs are the ports the ledger takes from other modules
type Needs struct {
	Tier TierReader
}

// LedgerPort is the read and deduct surface
type LedgerPort interface {
	GetRecordingTime(ctx context.Context) (RecordingTime, error)
	SaveRecordingTime(ctx context.Context, rt RecordingTime) error
	DeductRecordingTime(ctx context.Context, seconds int) (bool, error)
	GetTotalRecordingTime(ctx context.Context) (int, error)
	GetNextPoolInfo(ctx context.Context) (PoolInfo, error)
	HasRecordingTime(ctx context.Context, seconds int) (bool, error)
}

// PoolsPort lets billing move the subscriber and purchased pools
type PoolsPort interface {
	GrantSubscriberPool(ctx context.Context) error
	RevokeSubscriberPool(ctx context.Context) error
	AddPurchasedExtra(ctx context.Context) error
}
