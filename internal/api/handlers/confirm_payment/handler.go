package confirm_payment

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/confirm_payment"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotPayable         = "бронирование нельзя оплатить в текущем статусе"
	msgInvalidPromoToken  = "некорректный промо-токен"
	msgPromotionExpired   = "промоакция больше не действует"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело запроса опционально: без него оплата идет без промоакции
	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmPayment.ErrBookingNotPayable):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking not payable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, confirmPayment.ErrInvalidPromoToken):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid promo token: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidPromoToken)

		case errors.Is(err, confirmPayment.ErrPromotionExpired):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Promotion expired: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgPromotionExpired)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/confirm-payment - Failed to confirm payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm-payment - Payment confirmed successfully: booking_id=%d, payment_id=%d, amount=%s",
		bookingID, result.PaymentID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
