// Package entitlement names the subscription tiers shared by billing and the ledger
package entitlement

import "strings"

// Tier is the user's subscription level
type Tier string

// Tiers as persisted
const (
	TierFree       Tier = "Free"
	TierSubscriber Tier = "Subscriber"
	TierUnlocked   Tier = "Subscriber (Unlocked)"
)

// Paid reports whether t carries subscriber entitlements
func (t Tier) Paid() bool { return t == TierSubscriber || t == TierUnlocked }

// Valid reports whether t is a known tier
func (t Tier) Valid() bool { return t == TierFree || t.Paid() }

// Parse maps a stored or typed tier name onto a Tier; unknown names are Free
func Parse(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subscriber":
		return TierSubscriber
	case "subscriber (unlocked)", "unlocked":
		return TierUnlocked
	}
	return TierFree
}
