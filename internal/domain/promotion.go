package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion represents a time-windowed percentage discount code
type Promotion struct {
	ID                 int64
	Code               string // unique
	Description        string
	DiscountPercentage decimal.Decimal // in [0, 100]
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidOn returns true if the promotion may be applied on the given date:
// the active flag is set and the date falls within [StartDate, EndDate].
// Checked both when resolving a code and again at payment confirmation,
// so a promotion expiring between review and confirm is not honoured
func (p *Promotion) IsValidOn(date time.Time) bool {
	if !p.IsActive {
		return false
	}

	day := truncateToDay(date)
	return !day.Before(truncateToDay(p.StartDate)) && !day.After(truncateToDay(p.EndDate))
}

// truncateToDay drops the time-of-day component for date-only comparisons
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
