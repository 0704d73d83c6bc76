package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	promotionRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/promotion"
)

// UseCase use case для подтверждения оплаты бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	promotionRepo PromotionRepository
	paymentRepo   PaymentRepository
	tokenSigner   TokenSigner
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	promotionRepository PromotionRepository,
	paymentRepository PaymentRepository,
	tokenSigner TokenSigner,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepository,
		promotionRepo: promotionRepository,
		paymentRepo:   paymentRepository,
		tokenSigner:   tokenSigner,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute подтверждает оплату бронирования
// Сумма пересчитывается на сервере заново, платеж и смена статуса
// фиксируются в одной сериализуемой транзакции - повторное подтверждение
// того же бронирования невозможно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: user=%d, booking=%d, hasPromoToken=%t",
		req.UserID, req.BookingID, req.PromoToken != "")

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Проверка статуса, расчет суммы и запись платежа в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		// 2.2. Подтверждается только ожидающее бронирование
		if !booking.CanBeConfirmed() {
			return ErrBookingNotPayable
		}

		// 2.3. Пересчитываем сумму на сервере
		amount, err := domain.ComputeBookingTotal(booking.ActivityPrice, booking.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute total: %v", ErrInternal, err)
		}

		// 2.4. Промоакция перепроверяется на момент подтверждения
		var promotionID *int64
		if req.PromoToken != "" {
			promo, err := uc.resolvePromotion(txCtx, req.PromoToken)
			if err != nil {
				return err
			}

			amount, err = domain.ApplyDiscount(amount, promo.DiscountPercentage)
			if err != nil {
				return fmt.Errorf("%w: failed to apply discount: %v", ErrInternal, err)
			}
			promotionID = &promo.ID
		}

		// 2.5. Записываем платеж
		payment := &domain.Payment{
			BookingID:   &booking.ID,
			PromotionID: promotionID,
			Amount:      amount,
			Reference:   uuid.NewString(),
		}

		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		// 2.6. Переводим бронирование в confirmed
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		result = &Response{
			PaymentID:   created.ID,
			BookingID:   booking.ID,
			Status:      string(domain.StatusConfirmed),
			Amount:      created.Amount.StringFixed(2),
			Reference:   created.Reference,
			PromotionID: promotionID,
			CreatedAt:   created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrBookingNotPayable),
			errors.Is(err, ErrInvalidPromoToken),
			errors.Is(err, ErrPromotionExpired):
			uc.logger.Warn("ConfirmPayment: %v", err)
		default:
			uc.logger.Error("ConfirmPayment: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: booking id=%d confirmed, payment id=%d, amount=%s",
		result.BookingID, result.PaymentID, result.Amount)
	return result, nil
}

// resolvePromotion проверяет промо-токен и перечитывает промоакцию
// Акция, истекшая между расчетом и подтверждением, не применяется
func (uc *UseCase) resolvePromotion(ctx context.Context, token string) (*domain.Promotion, error) {
	claims, err := uc.tokenSigner.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPromoToken, err)
	}

	promo, err := uc.promotionRepo.GetByID(ctx, claims.PromotionID)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			return nil, ErrPromotionExpired
		}
		return nil, fmt.Errorf("%w: failed to get promotion: %v", ErrInternal, err)
	}

	if !promo.IsValidOn(uc.timeProvider.Now()) {
		return nil, ErrPromotionExpired
	}

	return promo, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	return nil
}
