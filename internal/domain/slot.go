package domain

import (
	"fmt"

	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

// SlotCatalog returns the fixed catalog of candidate booking slots:
// every hour on the hour from 08:00 to 20:00 inclusive, ascending
func SlotCatalog() []types.TimeString {
	catalog := make([]types.TimeString, 0, SlotWindowCloseHour-SlotWindowOpenHour+1)
	for hour := SlotWindowOpenHour; hour <= SlotWindowCloseHour; hour++ {
		catalog = append(catalog, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return catalog
}

// AvailableSlots returns the slot catalog minus the booked times,
// preserving ascending order. Booked times outside the catalog are ignored
func AvailableSlots(bookedTimes []types.TimeString) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, SlotWindowCloseHour-SlotWindowOpenHour+1)
	for _, slot := range SlotCatalog() {
		if _, taken := booked[slot]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// IsCatalogSlot reports whether t is one of the catalog slots
func IsCatalogSlot(t types.TimeString) bool {
	for _, slot := range SlotCatalog() {
		if slot == t {
			return true
		}
	}
	return false
}
