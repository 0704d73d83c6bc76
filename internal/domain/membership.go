package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipTier represents a subscription tier
type MembershipTier string

const (
	TierBasic   MembershipTier = "Basic"
	TierPremium MembershipTier = "Premium"
	TierVip     MembershipTier = "Vip"
)

// MembershipStatus represents the lifecycle status of a membership
type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "Active"
	MembershipExpired MembershipStatus = "Expired"
)

// tierPrices fixed price lookup table per tier
var tierPrices = map[MembershipTier]decimal.Decimal{
	TierBasic:   decimal.New(1000, -2), // 10.00
	TierPremium: decimal.New(2500, -2), // 25.00
	TierVip:     decimal.New(5000, -2), // 50.00
}

// tierDurationDays fixed duration lookup table per tier
var tierDurationDays = map[MembershipTier]int{
	TierBasic:   30,
	TierPremium: 90,
	TierVip:     180,
}

// defaultTierDurationDays is the deliberate fallback for unrecognized tiers:
// they get the Basic duration while the price stays caller-supplied
const defaultTierDurationDays = 30

// Membership represents a subscription of a user to a tier.
// Price and ExpirationDate are derived fields: EvaluateMembership computes
// them, the storage layer persists the result
type Membership struct {
	ID             int64
	UserID         int64
	Tier           MembershipTier
	Price          decimal.Decimal
	StartDate      time.Time
	ExpirationDate time.Time
	AutoRenew      bool
	Status         MembershipStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TierPrice returns the fixed price for a tier.
// The second return value is false for unrecognized tiers
func TierPrice(tier MembershipTier) (decimal.Decimal, bool) {
	price, ok := tierPrices[tier]
	return price, ok
}

// TierDurationDays returns the membership duration in days for a tier,
// falling back to the Basic duration for unrecognized tiers
func TierDurationDays(tier MembershipTier) int {
	if days, ok := tierDurationDays[tier]; ok {
		return days
	}
	return defaultTierDurationDays
}

// IsValidTier reports whether tier is one of the known tiers
func IsValidTier(tier MembershipTier) bool {
	_, ok := tierPrices[tier]
	return ok
}

// CalculateExpirationDate computes the expiration date for a tier
// starting from the given date
func CalculateExpirationDate(tier MembershipTier, from time.Time) time.Time {
	return truncateToDay(from).AddDate(0, 0, TierDurationDays(tier))
}

// EvaluateMembership is the pure membership lifecycle function: given the
// current state and today's date it produces the next state. Applied on
// every save and by the periodic renewal sweep; idempotent, so redundant
// calls are safe.
//
// Rules, in order:
//  1. Zero price is derived from the tier table (unknown tiers keep the
//     caller-supplied price).
//  2. Zero expiration date is derived as StartDate + tier duration.
//  3. An expired membership either renews from today (auto_renew) or is
//     demoted to Expired. An unexpired membership keeps whatever status it
//     already has - the function only demotes or renews at expiry
func EvaluateMembership(m Membership, today time.Time) Membership {
	today = truncateToDay(today)

	if m.Price.IsZero() {
		if price, ok := TierPrice(m.Tier); ok {
			m.Price = price
		}
	}

	if m.ExpirationDate.IsZero() {
		m.ExpirationDate = CalculateExpirationDate(m.Tier, m.StartDate)
	}

	if truncateToDay(m.ExpirationDate).Before(today) {
		if m.AutoRenew {
			m.StartDate = today
			m.ExpirationDate = CalculateExpirationDate(m.Tier, today)
			m.Status = MembershipActive
		} else {
			m.Status = MembershipExpired
		}
	}

	return m
}
