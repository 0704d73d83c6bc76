package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	activityRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/activity"
	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

type fakeActivityRepo struct {
	activity *domain.Activity
	err      error
}

func (f *fakeActivityRepo) GetByID(_ context.Context, _ int64) (*domain.Activity, error) {
	return f.activity, f.err
}

type fakeBookingRepo struct {
	bookedTimes []types.TimeString
	err         error
}

func (f *fakeBookingRepo) GetBookedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.bookedTimes, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestActivity() *domain.Activity {
	return &domain.Activity{ID: 1, Name: "Bowling", IsAvailable: true}
}

func TestExecute_FullCatalogWhenNoBookings(t *testing.T) {
	uc := NewUseCase(
		&fakeActivityRepo{activity: newTestActivity()},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityID: 1,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 13)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[12])
}

func TestExecute_BookedTimesExcluded(t *testing.T) {
	uc := NewUseCase(
		&fakeActivityRepo{activity: newTestActivity()},
		&fakeBookingRepo{bookedTimes: []types.TimeString{"10:00", "15:00"}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityID: 1,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 11)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("15:00"))

	// Порядок по возрастанию сохраняется
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeActivityRepo{err: activityRepo.ErrActivityNotFound},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ActivityID: 42,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_ActivityUnavailable(t *testing.T) {
	activity := newTestActivity()
	activity.IsAvailable = false

	uc := NewUseCase(
		&fakeActivityRepo{activity: activity},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ActivityID: 1,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrActivityUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeActivityRepo{}, &fakeBookingRepo{}, nopLogger{})

	// Некорректный запрос - ошибка, а не пустой список
	_, err := uc.Execute(context.Background(), &Request{ActivityID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ActivityID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
