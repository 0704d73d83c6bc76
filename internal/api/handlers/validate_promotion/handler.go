package validate_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPromotionNotFound  = "промокод не найден"
	msgPromotionInvalid   = "промокод не действует"
	msgInvalidCode        = "некорректный промокод"
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

// Handle POST /api/v1/promotions/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ValidatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("POST /promotions/validate - Promotion not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgPromotionNotFound)

		case errors.Is(err, promotions.ErrPromotionInvalid):
			h.logger.Warn("POST /promotions/validate - Promotion not valid: code=%s", req.Code)
			handlers.RespondConflict(w, msgPromotionInvalid)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /promotions/validate - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("POST /promotions/validate - Failed to validate promotion: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promotions/validate - Promotion validated successfully: code=%s, promotion_id=%d",
		req.Code, result.PromotionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
