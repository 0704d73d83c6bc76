package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LeisureService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

type fakeBookingRepo struct {
	bookedTimes []types.TimeString
	createErr   error
	created     *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 100
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetBookedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.bookedTimes, nil
}

type fakeActivityRepo struct {
	activity *domain.Activity
	err      error
}

func (f *fakeActivityRepo) GetByID(_ context.Context, _ int64) (*domain.Activity, error) {
	return f.activity, f.err
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUserWithGracefulDegradation(_ context.Context, _ int64) (*userservice.User, error) {
	return f.user, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, activities *fakeActivityRepo) *UseCase {
	uc := NewUseCase(
		bookings,
		activities,
		&fakeUserClient{user: &userservice.User{ID: 7}},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func newTestActivity() *domain.Activity {
	return &domain.Activity{
		ID:          1,
		Name:        "Bowling",
		Price:       decimal.RequireFromString("10.00"),
		IsAvailable: true,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:     7,
		ActivityID: 1,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeActivityRepo{activity: newTestActivity()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)

	// Данные активности денормализуются в бронирование
	assert.Equal(t, "Bowling", resp.ActivityName)
	assert.Equal(t, "10.00", resp.ActivityPrice)
}

func TestExecute_ExplicitDuration(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeActivityRepo{activity: newTestActivity()})

	req := validRequest()
	req.DurationMinutes = 90

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: newTestActivity()})

	req := validRequest()
	req.DurationMinutes = 45

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_SlotTaken(t *testing.T) {
	bookings := &fakeBookingRepo{bookedTimes: []types.TimeString{"10:00"}}
	uc := newTestUseCase(bookings, &fakeActivityRepo{activity: newTestActivity()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotTakenOnInsertRace(t *testing.T) {
	// Проверка прошла, но конкурентная вставка успела первой -
	// уникальный индекс возвращает ErrSlotTaken
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(bookings, &fakeActivityRepo{activity: newTestActivity()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StartTimeOutsideWindow(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: newTestActivity()})

	for _, startTime := range []types.TimeString{"07:00", "21:00", "10:30"} {
		req := validRequest()
		req.StartTime = startTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "startTime %s", startTime)
	}
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: newTestActivity()})

	req := validRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ActivityUnavailable(t *testing.T) {
	activity := newTestActivity()
	activity.IsAvailable = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: activity})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrActivityUnavailable)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: newTestActivity()})
	uc.userClient = &fakeUserClient{err: userservice.ErrUserNotFound}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_UserServiceDegradedDoesNotBlock(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeActivityRepo{activity: newTestActivity()})
	uc.userClient = &fakeUserClient{err: userservice.ErrServiceDegraded}

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}
