package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestEvaluateMembership_DerivesPriceAndExpiration(t *testing.T) {
	m := Membership{
		Tier:      TierPremium,
		StartDate: today,
		Status:    MembershipActive,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, "25.00", next.Price.StringFixed(2))
	assert.Equal(t, today.AddDate(0, 0, 90), next.ExpirationDate)
	assert.Equal(t, MembershipActive, next.Status)
}

func TestEvaluateMembership_TierTables(t *testing.T) {
	tests := []struct {
		tier  MembershipTier
		price string
		days  int
	}{
		{TierBasic, "10.00", 30},
		{TierPremium, "25.00", 90},
		{TierVip, "50.00", 180},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			next := EvaluateMembership(Membership{Tier: tt.tier, StartDate: today}, today)
			assert.Equal(t, tt.price, next.Price.StringFixed(2))
			assert.Equal(t, today.AddDate(0, 0, tt.days), next.ExpirationDate)
		})
	}
}

func TestEvaluateMembership_UnknownTierFallback(t *testing.T) {
	// Неизвестный тариф получает длительность Basic, цена остается как задана
	m := Membership{
		Tier:      MembershipTier("Gold"),
		Price:     decimal.RequireFromString("99.00"),
		StartDate: today,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, "99.00", next.Price.StringFixed(2))
	assert.Equal(t, today.AddDate(0, 0, 30), next.ExpirationDate)
}

func TestEvaluateMembership_AutoRenewal(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	m := Membership{
		Tier:           TierBasic,
		Price:          decimal.RequireFromString("10.00"),
		StartDate:      yesterday.AddDate(0, 0, -30),
		ExpirationDate: yesterday,
		AutoRenew:      true,
		Status:         MembershipExpired,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, today, next.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 30), next.ExpirationDate)
	assert.Equal(t, MembershipActive, next.Status)
}

func TestEvaluateMembership_ExpiryWithoutRenewal(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	start := yesterday.AddDate(0, 0, -30)
	m := Membership{
		Tier:           TierBasic,
		Price:          decimal.RequireFromString("10.00"),
		StartDate:      start,
		ExpirationDate: yesterday,
		AutoRenew:      false,
		Status:         MembershipActive,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, MembershipExpired, next.Status)
	// Даты не трогаем
	assert.Equal(t, start, next.StartDate)
	assert.Equal(t, yesterday, next.ExpirationDate)
}

func TestEvaluateMembership_Idempotent(t *testing.T) {
	m := Membership{
		Tier:           TierBasic,
		StartDate:      today.AddDate(0, 0, -31),
		ExpirationDate: today.AddDate(0, 0, -1),
		AutoRenew:      true,
		Status:         MembershipExpired,
	}

	once := EvaluateMembership(m, today)
	twice := EvaluateMembership(once, today)

	assert.Equal(t, once, twice)
}

func TestEvaluateMembership_DoesNotResetStatusWhileUnexpired(t *testing.T) {
	// Статус, выставленный вручную, не сбрасывается до истечения срока
	m := Membership{
		Tier:           TierBasic,
		Price:          decimal.RequireFromString("10.00"),
		StartDate:      today,
		ExpirationDate: today.AddDate(0, 0, 30),
		Status:         MembershipExpired,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, MembershipExpired, next.Status)
}

func TestEvaluateMembership_ExpiringTodayIsNotExpired(t *testing.T) {
	// expiration_date >= today означает "еще действует"
	m := Membership{
		Tier:           TierBasic,
		Price:          decimal.RequireFromString("10.00"),
		StartDate:      today.AddDate(0, 0, -30),
		ExpirationDate: today,
		Status:         MembershipActive,
	}

	next := EvaluateMembership(m, today)

	assert.Equal(t, MembershipActive, next.Status)
	assert.Equal(t, today, next.ExpirationDate)
}
