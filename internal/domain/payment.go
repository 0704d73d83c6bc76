package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a completed payment for a booking.
// Created once at the moment of successful payment submission,
// immutable thereafter
type Payment struct {
	ID          int64
	BookingID   *int64 // nullable, cascade-deleted with the booking
	PromotionID *int64 // nullable, set to NULL when the promotion is deleted
	Amount      decimal.Decimal // post-discount
	Reference   string          // uuid, external payment reference

	CreatedAt time.Time
}
