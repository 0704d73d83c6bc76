package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBookingTotal(t *testing.T) {
	tests := []struct {
		name            string
		price           string
		durationMinutes int
		want            string
	}{
		{name: "one hour", price: "10.00", durationMinutes: 60, want: "10.00"},
		{name: "half hour", price: "10.00", durationMinutes: 30, want: "5.00"},
		{name: "ninety minutes", price: "10.00", durationMinutes: 90, want: "15.00"},
		{name: "two hours", price: "12.50", durationMinutes: 120, want: "25.00"},
		{name: "three hours", price: "33.33", durationMinutes: 180, want: "99.99"},
		{name: "penny precision", price: "0.01", durationMinutes: 30, want: "0.01"},
		{name: "non-enumerated duration computed proportionally", price: "10.00", durationMinutes: 45, want: "7.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)

			total, err := ComputeBookingTotal(price, tt.durationMinutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total.StringFixed(2))
		})
	}
}

func TestComputeBookingTotal_ExactForAllDurationChoices(t *testing.T) {
	// Для всех допустимых длительностей результат точный: price * duration/60
	price := decimal.RequireFromString("10.00")

	expected := map[int]string{30: "5.00", 60: "10.00", 90: "15.00", 120: "20.00", 180: "30.00"}
	for _, d := range DurationChoices {
		total, err := ComputeBookingTotal(price, d)
		require.NoError(t, err)
		assert.Equal(t, expected[d], total.StringFixed(2), "duration %d", d)
	}
}

func TestComputeBookingTotal_InvalidDuration(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	_, err := ComputeBookingTotal(price, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeBookingTotal(price, -30)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		percent string
		want    string
	}{
		{name: "ten percent off ten", total: "10.00", percent: "10", want: "9.00"},
		{name: "no discount", total: "10.00", percent: "0", want: "10.00"},
		{name: "full discount", total: "10.00", percent: "100", want: "0.00"},
		{name: "fractional percent", total: "100.00", percent: "12.5", want: "87.50"},
		{name: "rounding to two places", total: "9.99", percent: "33.33", want: "6.66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyDiscount(decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.percent))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestApplyDiscount_OutOfRange(t *testing.T) {
	total := decimal.RequireFromString("10.00")

	_, err := ApplyDiscount(total, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = ApplyDiscount(total, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}
