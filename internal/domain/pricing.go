package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidDuration is returned for non-positive booking durations
	ErrInvalidDuration = errors.New("domain: duration must be positive")

	// ErrInvalidDiscount is returned for discount percentages outside [0, 100]
	ErrInvalidDiscount = errors.New("domain: discount percent must be in [0, 100]")
)

// priceScale number of decimal places for all money computations
const priceScale = 2

var (
	minutesPerHour = decimal.NewFromInt(MinutesPerHour)
	oneHundred     = decimal.NewFromInt(100)
)

// ComputeBookingTotal computes the total price of a booking:
// activity price per hour multiplied by duration in hours, rounded to
// 2 decimal places. Exact decimal arithmetic, no binary floating point.
//
// Durations outside DurationChoices are computed proportionally rather
// than rejected; only non-positive values are an error
func ComputeBookingTotal(activityPrice decimal.Decimal, durationMinutes int) (decimal.Decimal, error) {
	if durationMinutes <= 0 {
		return decimal.Zero, ErrInvalidDuration
	}

	hours := decimal.NewFromInt(int64(durationMinutes)).Div(minutesPerHour)
	return activityPrice.Mul(hours).Round(priceScale), nil
}

// ApplyDiscount applies a percentage discount to a total:
// total * (1 - discountPercent/100), rounded to 2 decimal places.
// Discount percentages outside [0, 100] are a caller error
func ApplyDiscount(total decimal.Decimal, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return decimal.Zero, ErrInvalidDiscount
	}

	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(oneHundred))
	return total.Mul(factor).Round(priceScale), nil
}
