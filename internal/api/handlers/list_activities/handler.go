package list_activities

import (
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
)

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// По умолчанию публичный каталог показывает только доступные активности
	onlyAvailable := r.URL.Query().Get("all") != "true"

	result, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /activities - Failed to list activities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities - Activities listed successfully: count=%d", len(result.Activities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
