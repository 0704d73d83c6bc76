package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotion_IsValidOn(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	promo := Promotion{
		Code:      "MARCH10",
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "inside window", date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), want: true},
		{name: "first day inclusive", date: start, want: true},
		{name: "last day inclusive", date: end, want: true},
		{name: "last day late evening", date: time.Date(2025, 3, 31, 23, 30, 0, 0, time.UTC), want: true},
		{name: "before window", date: start.AddDate(0, 0, -1), want: false},
		{name: "after window", date: end.AddDate(0, 0, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promo.IsValidOn(tt.date))
		})
	}
}

func TestPromotion_IsValidOn_Inactive(t *testing.T) {
	promo := Promotion{
		Code:      "MARCH10",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	}

	assert.False(t, promo.IsValidOn(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
}
