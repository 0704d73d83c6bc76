package update_promotion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

const (
	msgInvalidPromotionID = "некорректный ID промоакции"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные промоакции"
	msgNotFound           = "промоакция не найдена"
	msgCodeConflict       = "промокод уже существует"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	promotionIDStr := vars["promotionId"]

	promotionID, err := strconv.ParseInt(promotionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	var req models.UpdatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/promotions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), promotionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("PATCH /admin/promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, promotions.ErrCodeConflict):
			h.logger.Warn("PATCH /admin/promotions/{id} - Code conflict: promotion_id=%d", promotionID)
			handlers.RespondConflict(w, msgCodeConflict)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/promotions/{id} - Invalid data: promotion_id=%d, error=%v", promotionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/promotions/{id} - Failed to update promotion: promotion_id=%d, error=%v", promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/promotions/{id} - Promotion updated successfully: promotion_id=%d", promotionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
