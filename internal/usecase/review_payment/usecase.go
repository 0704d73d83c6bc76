package review_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	promotionRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/promotion"
)

// UseCase use case для расчета суммы к оплате
type UseCase struct {
	bookingRepo   BookingRepository
	promotionRepo PromotionRepository
	tokenSigner   TokenSigner
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	promotionRepository PromotionRepository,
	tokenSigner TokenSigner,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepository,
		promotionRepo: promotionRepository,
		tokenSigner:   tokenSigner,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет расчет суммы к оплате
// Сумма = цена за час * длительность в часах, скидка применяется после
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReviewPayment: user=%d, booking=%d, hasPromoToken=%t",
		req.UserID, req.BookingID, req.PromoToken != "")

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReviewPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование и проверяем доступ
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ReviewPayment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ReviewPayment: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("ReviewPayment: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Оплачивать можно только ожидающее бронирование
	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ReviewPayment: booking id=%d is not payable, status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingNotPayable
	}

	// 4. Базовая сумма
	baseAmount, err := domain.ComputeBookingTotal(booking.ActivityPrice, booking.DurationMinutes)
	if err != nil {
		uc.logger.Error("ReviewPayment: failed to compute total for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to compute total: %v", ErrInternal, err)
	}

	resp := &Response{
		BookingID:   booking.ID,
		BaseAmount:  baseAmount.StringFixed(2),
		TotalAmount: baseAmount.StringFixed(2),
	}

	// 5. Применяем промоакцию, если предъявлен токен
	if req.PromoToken != "" {
		promo, err := uc.resolvePromotion(ctx, req.PromoToken)
		if err != nil {
			uc.logger.Warn("ReviewPayment: promo resolution failed for booking id=%d: %v", req.BookingID, err)
			return nil, err
		}

		total, err := domain.ApplyDiscount(baseAmount, promo.DiscountPercentage)
		if err != nil {
			uc.logger.Error("ReviewPayment: failed to apply discount: %v", err)
			return nil, fmt.Errorf("%w: failed to apply discount: %v", ErrInternal, err)
		}

		pct := promo.DiscountPercentage.StringFixed(2)
		resp.DiscountPercentage = &pct
		resp.TotalAmount = total.StringFixed(2)
		resp.PromotionID = &promo.ID
	}

	uc.logger.Info("ReviewPayment: booking id=%d, total=%s", req.BookingID, resp.TotalAmount)
	return resp, nil
}

// resolvePromotion проверяет промо-токен и перечитывает промоакцию
// Окно действия проверяется заново - токен, выпущенный вчера, не продлевает акцию
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
