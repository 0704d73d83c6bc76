package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity represents a bookable recreational offering
type Activity struct {
	ID          int64
	Name        string // unique
	Description string
	Price       decimal.Decimal // price per hour, 2 decimal places
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeBooked returns true if the activity accepts new bookings
func (a *Activity) CanBeBooked() bool {
	return a.IsAvailable
}
