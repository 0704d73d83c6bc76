package review_payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LeisureService/pkg/promotoken"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

type fakePromotionRepo struct {
	promo *domain.Promotion
	err   error
}

func (f *fakePromotionRepo) GetByID(_ context.Context, _ int64) (*domain.Promotion, error) {
	return f.promo, f.err
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

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UserID:          7,
		ActivityPrice:   decimal.RequireFromString("10.00"),
		DurationMinutes: 90,
		Status:          domain.StatusPending,
	}
}

func newTestPromotion() *domain.Promotion {
	return &domain.Promotion{
		ID:                 5,
		Code:               "SUMMER10",
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, promotions *fakePromotionRepo, signer TokenSigner) *UseCase {
	uc := NewUseCase(bookings, promotions, signer, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_BaseAmountWithoutPromo(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{}, signer)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})

	require.NoError(t, err)
	// 10.00 за час * 90 минут
	assert.Equal(t, "15.00", resp.BaseAmount)
	assert.Equal(t, "15.00", resp.TotalAmount)
	assert.Nil(t, resp.PromotionID)
	assert.Nil(t, resp.DiscountPercentage)
}

func TestExecute_DiscountApplied(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	promo := newTestPromotion()
	token, err := signer.Issue(promo.ID, promo.Code, testNow)
	require.NoError(t, err)

	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{promo: promo}, signer)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1, PromoToken: token})

	require.NoError(t, err)
	assert.Equal(t, "15.00", resp.BaseAmount)
	// 10% от 15.00
	assert.Equal(t, "13.50", resp.TotalAmount)
	require.NotNil(t, resp.PromotionID)
	assert.Equal(t, int64(5), *resp.PromotionID)
	require.NotNil(t, resp.DiscountPercentage)
	assert.Equal(t, "10.00", *resp.DiscountPercentage)
}

func TestExecute_PromotionExpiredSinceValidation(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	promo := newTestPromotion()
	promo.EndDate = time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	token, err := signer.Issue(promo.ID, promo.Code, testNow)
	require.NoError(t, err)

	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{promo: promo}, signer)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1, PromoToken: token})
	assert.ErrorIs(t, err, ErrPromotionExpired)
}

func TestExecute_GarbageToken(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1, PromoToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidPromoToken)
}

func TestExecute_AccessDenied(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 8, BookingID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BookingNotPayable(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)

	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled} {
		booking := newTestBooking()
		booking.Status = status
		uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakePromotionRepo{}, signer)

		_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})
		assert.ErrorIs(t, err, ErrBookingNotPayable, "status %s", status)
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, &fakePromotionRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
