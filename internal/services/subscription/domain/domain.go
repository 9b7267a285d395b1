// Package domain holds the subscription status model, the access code
// allow-list and the ad visibility rules
package domain

import (
	"context"
	"strings"

	"sayitanyway/internal/core/entitlement"
	pstrings "sayitanyway/internal/platform/strings"
	rtdom "sayitanyway/internal/services/recordingtime/domain"
)

// DefaultAccessCodes unlock subscriber entitlements without billing.
// They are a support backdoor, not a security boundary
var DefaultAccessCodes = []string{"DEV123", "BETATESTER", "SUPPORT2024"}

// AdFreeScreens never show ads; matched as substrings of the screen name
var AdFreeScreens = []string{"support-resources", "compose-message", "recipient"}

// Status is the persisted subscription record. Timestamps are unix milliseconds
type Status struct {
	Tier                    entitlement.Tier `json:"tier"`
	IsUnlocked              bool             `json:"isUnlocked"`
	StoreSubscriptionActive bool             `json:"storeSubscriptionActive"`
	SubscriptionActivatedAt int64            `json:"subscriptionActivatedDate,omitempty"`
	UnlockedAt              int64            `json:"unlockedDate,omitempty"`
}

// FreeStatus is the status of a user who never subscribed
func FreeStatus() Status { return Status{Tier: entitlement.TierFree} }

// ValidateAccessCode is a trimmed, case-insensitive membership test
func ValidateAccessCode(code string, allow []string) bool {
	c := strings.TrimSpace(code)
	if c == "" {
		return false
	}
	for _, a := range allow {
		if strings.EqualFold(c, strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}

// ShouldShowAds is false for any paid tier and on ad-free screens
func ShouldShowAds(t entitlement.Tier, screen string) bool {
	if t != entitlement.TierFree {
		return false
	}
	return !pstrings.ContainsAny(screen, AdFreeScreens...)
}

// StatusStore persists Status and answers the ledger's tier question
type StatusStore interface {
	rtdom.TierReader
	GetStatus(ctx context.Context) (Status, error)
	SaveStatus(ctx context.Context, s Status) error
}

// Needs are the ports the subscription service takes from other modules
type Needs struct {
	Status StatusStore
	Pools  rtdom.PoolsPort
}

// ServicePort is the subscription surface
type ServicePort interface {
	rtdom.TierReader
	GetStatus(ctx context.Context) (Status, error)
	SaveStatus(ctx context.Context, s Status) error
	ActivateStoreSubscription(ctx context.Context) error
	DeactivateStoreSubscription(ctx context.Context) error
	RedeemAccessCode(ctx context.Context, code string) (bool, error)
	ClearUnlock(ctx context.Context) error
	PurchaseExtraTime(ctx context.Context) error
	ShouldShowAds(ctx context.Context, screen string) (bool, error)
}
