package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Daily booking window: hourly slots from SlotWindowOpenHour to
// SlotWindowCloseHour inclusive (13 slots)
const (
	SlotWindowOpenHour  = 8
	SlotWindowCloseHour = 20
)

// MinutesPerHour used by the pricing calculator to convert booking
// duration into hours
const MinutesPerHour = 60

// DefaultDurationMinutes is the booking duration used when none is supplied
const DefaultDurationMinutes = 60

// DurationChoices допустимые длительности бронирования в минутах
var DurationChoices = []int{30, 60, 90, 120, 180}

// Business validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	MaxCodeLength        = 20
)
