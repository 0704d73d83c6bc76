package create_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные промоакции"
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

// Handle POST /api/v1/admin/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrCodeConflict):
			h.logger.Warn("POST /admin/promotions - Code conflict: code=%s", req.Code)
			handlers.RespondConflict(w, msgCodeConflict)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /admin/promotions - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/promotions - Failed to create promotion: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promotions - Promotion created successfully: promotion_id=%d, code=%s",
		result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
