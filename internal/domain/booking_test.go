package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusMachine(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		canConfirm   bool
		canCancel    bool
		terminal     bool
		stillOccupies bool
	}{
		{StatusPending, true, true, false, true},
		{StatusConfirmed, false, false, true, true},
		{StatusCancelled, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.stillOccupies, b.IsActive())
		})
	}
}

func TestIsValidDuration(t *testing.T) {
	for _, d := range DurationChoices {
		assert.True(t, IsValidDuration(d), "duration %d", d)
	}

	assert.False(t, IsValidDuration(0))
	assert.False(t, IsValidDuration(45))
	assert.False(t, IsValidDuration(240))
}

func TestIsValidBookingStatus(t *testing.T) {
	assert.True(t, IsValidBookingStatus(StatusPending))
	assert.True(t, IsValidBookingStatus(StatusConfirmed))
	assert.True(t, IsValidBookingStatus(StatusCancelled))
	assert.False(t, IsValidBookingStatus("completed"))
}
