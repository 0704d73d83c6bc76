package delete_activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities"
)

const (
	msgInvalidActivityID = "некорректный ID активности"
	msgNotFound          = "активность не найдена"
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

// Handle DELETE /api/v1/admin/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityIDStr := vars["activityId"]

	activityID, err := strconv.ParseInt(activityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	if err := h.service.Delete(r.Context(), activityID); err != nil {
		if errors.Is(err, activities.ErrActivityNotFound) {
			h.logger.Warn("DELETE /admin/activities/{id} - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /admin/activities/{id} - Failed to delete activity: activity_id=%d, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/activities/{id} - Activity deleted successfully: activity_id=%d", activityID)
	w.WriteHeader(http.StatusNoContent)
}
