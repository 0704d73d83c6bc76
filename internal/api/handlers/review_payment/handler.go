package review_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/api/middleware"
	reviewPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/review_payment"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "бронирование не найдено"
	msgForbidden         = "доступ запрещен"
	msgNotPayable        = "бронирование нельзя оплатить в текущем статусе"
	msgInvalidPromoToken = "некорректный промо-токен"
	msgPromotionExpired  = "промоакция больше не действует"
	msgInvalidRequest    = "некорректные параметры запроса"
)

type Handler struct {
	useCase ReviewPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ReviewPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/payment-review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/payment-review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/payment-review - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Промо-токен опционален: без него расчет идет без скидки
	promoToken := r.URL.Query().Get("promotionToken")

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(userID, bookingID, promoToken))
	if err != nil {
		switch {
		case errors.Is(err, reviewPayment.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/payment-review - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviewPayment.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/payment-review - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviewPayment.ErrBookingNotPayable):
			h.logger.Warn("GET /bookings/{id}/payment-review - Booking not payable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, reviewPayment.ErrInvalidPromoToken):
			h.logger.Warn("GET /bookings/{id}/payment-review - Invalid promo token: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidPromoToken)

		case errors.Is(err, reviewPayment.ErrPromotionExpired):
			h.logger.Warn("GET /bookings/{id}/payment-review - Promotion expired: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgPromotionExpired)

		case errors.Is(err, reviewPayment.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/payment-review - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /bookings/{id}/payment-review - Failed to review payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/payment-review - Payment reviewed successfully: booking_id=%d, user_id=%d, total=%s",
		bookingID, userID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
