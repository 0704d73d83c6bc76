package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Stats retrieved successfully: bookings=%d, revenue=%s",
		result.TotalBookings, result.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
