package confirm_payment

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
	booking       *domain.Booking
	err           error
	updatedStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakePromotionRepo struct {
	promo *domain.Promotion
	err   error
}

func (f *fakePromotionRepo) GetByID(_ context.Context, _ int64) (*domain.Promotion, error) {
	return f.promo, f.err
}

type fakePaymentRepo struct {
	created *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	p.ID = 200
	p.CreatedAt = time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)
	f.created = p
	return p, nil
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

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UserID:          7,
		ActivityPrice:   decimal.RequireFromString("10.00"),
		DurationMinutes: 60,
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

func newTestUseCase(bookings *fakeBookingRepo, promotions *fakePromotionRepo, payments *fakePaymentRepo, signer TokenSigner) *UseCase {
	uc := NewUseCase(bookings, promotions, payments, signer, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_ConfirmsBookingAndRecordsPayment(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	bookings := &fakeBookingRepo{booking: newTestBooking()}
	payments := &fakePaymentRepo{}
	uc := newTestUseCase(bookings, &fakePromotionRepo{}, payments, signer)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(200), resp.PaymentID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "10.00", resp.Amount)
	assert.NotEmpty(t, resp.Reference)

	// Статус бронирования обновлен, платеж привязан к бронированию
	require.NotNil(t, bookings.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *bookings.updatedStatus)
	require.NotNil(t, payments.created.BookingID)
	assert.Equal(t, int64(1), *payments.created.BookingID)
}

func TestExecute_DiscountAppliedAtConfirmation(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	promo := newTestPromotion()
	token, err := signer.Issue(promo.ID, promo.Code, testNow)
	require.NoError(t, err)

	payments := &fakePaymentRepo{}
	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{promo: promo}, payments, signer)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1, PromoToken: token})

	require.NoError(t, err)
	assert.Equal(t, "9.00", resp.Amount)
	require.NotNil(t, resp.PromotionID)
	assert.Equal(t, int64(5), *resp.PromotionID)
	require.NotNil(t, payments.created.PromotionID)
}

func TestExecute_PromotionExpiredBetweenReviewAndConfirm(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	promo := newTestPromotion()
	promo.EndDate = time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	token, err := signer.Issue(promo.ID, promo.Code, testNow)
	require.NoError(t, err)

	bookings := &fakeBookingRepo{booking: newTestBooking()}
	uc := newTestUseCase(bookings, &fakePromotionRepo{promo: promo}, &fakePaymentRepo{}, signer)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1, PromoToken: token})

	assert.ErrorIs(t, err, ErrPromotionExpired)
	// Бронирование осталось нетронутым
	assert.Nil(t, bookings.updatedStatus)
}

func TestExecute_AlreadyConfirmed(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	booking := newTestBooking()
	booking.Status = domain.StatusConfirmed
	uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakePromotionRepo{}, &fakePaymentRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})
	assert.ErrorIs(t, err, ErrBookingNotPayable)
}

func TestExecute_CancelledBooking(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	booking := newTestBooking()
	booking.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakePromotionRepo{}, &fakePaymentRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})
	assert.ErrorIs(t, err, ErrBookingNotPayable)
}

func TestExecute_AccessDenied(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{booking: newTestBooking()}, &fakePromotionRepo{}, &fakePaymentRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 8, BookingID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BookingNotFound(t *testing.T) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	uc := newTestUseCase(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, &fakePromotionRepo{}, &fakePaymentRepo{}, signer)

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 1})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
