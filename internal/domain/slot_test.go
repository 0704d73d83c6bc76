package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

func TestSlotCatalog(t *testing.T) {
	catalog := SlotCatalog()

	require.Len(t, catalog, 13)
	assert.Equal(t, types.TimeString("08:00"), catalog[0])
	assert.Equal(t, types.TimeString("20:00"), catalog[12])

	// Порядок строго возрастающий, шаг - час
	for i := 1; i < len(catalog); i++ {
		assert.True(t, catalog[i-1].IsBefore(catalog[i]))
	}
}

func TestAvailableSlots(t *testing.T) {
	available := AvailableSlots([]types.TimeString{"10:00"})

	require.Len(t, available, 12)
	assert.NotContains(t, available, types.TimeString("10:00"))
	assert.Contains(t, available, types.TimeString("08:00"))
	assert.Contains(t, available, types.TimeString("20:00"))

	for i := 1; i < len(available); i++ {
		assert.True(t, available[i-1].IsBefore(available[i]))
	}
}

func TestAvailableSlots_NoneBooked(t *testing.T) {
	assert.Len(t, AvailableSlots(nil), 13)
}

func TestAvailableSlots_AllBooked(t *testing.T) {
	assert.Empty(t, AvailableSlots(SlotCatalog()))
}

func TestAvailableSlots_IgnoresTimesOutsideCatalog(t *testing.T) {
	// Бронирования на нестандартное время не влияют на каталог
	available := AvailableSlots([]types.TimeString{"07:00", "10:30", "21:00"})
	assert.Len(t, available, 13)
}

func TestIsCatalogSlot(t *testing.T) {
	assert.True(t, IsCatalogSlot("08:00"))
	assert.True(t, IsCatalogSlot("20:00"))
	assert.False(t, IsCatalogSlot("07:00"))
	assert.False(t, IsCatalogSlot("10:30"))
}
