package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of an activity for a user
// at a specific date, time and duration
type Booking struct {
	ID              int64
	UserID          int64
	ActivityID      int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ActivityName  string
	ActivityPrice decimal.Decimal

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeConfirmed returns true if the booking can transition to confirmed.
// Confirmation happens only through a successful payment; confirmed and
// cancelled are terminal states
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// IsTerminal returns true if no further status transition is defined
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// IsValidDuration reports whether the duration is one of DurationChoices
func IsValidDuration(minutes int) bool {
	for _, d := range DurationChoices {
		if d == minutes {
			return true
		}
	}
	return false
}

// IsValidBookingStatus reports whether s is a known booking status
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
