package list_promotions

import (
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
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

// Handle GET /api/v1/admin/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/promotions - Promotions listed successfully: count=%d", len(result.Promotions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
