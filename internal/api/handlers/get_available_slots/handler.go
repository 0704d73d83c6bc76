package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-LeisureService/internal/usecase/get_available_slots"
)

const (
	msgInvalidActivityID     = "некорректный ID активности"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgActivityNotFound      = "активность не найдена"
	msgActivityUnavailable   = "активность недоступна для бронирования"
	msgInvalidRequestDetails = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем activityId из URL
	activityIDStr := vars["activityId"]
	activityID, err := strconv.ParseInt(activityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/available-slots - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /activities/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(activityID, dateStr)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id}/available-slots - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, getAvailableSlots.ErrActivityUnavailable):
			h.logger.Warn("GET /activities/{id}/available-slots - Activity unavailable: activity_id=%d", activityID)
			handlers.RespondBadRequest(w, msgActivityUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /activities/{id}/available-slots - Invalid input: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestDetails)

		default:
			h.logger.Error("GET /activities/{id}/available-slots - Failed to get slots: activity_id=%d, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /activities/{id}/available-slots - Slots retrieved successfully: activity_id=%d, slots_count=%d",
		activityID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
