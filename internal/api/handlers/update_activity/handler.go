package update_activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities/models"
)

const (
	msgInvalidActivityID  = "некорректный ID активности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные активности"
	msgNotFound           = "активность не найдена"
	msgNameConflict       = "активность с таким названием уже существует"
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

// Handle PATCH /api/v1/admin/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityIDStr := vars["activityId"]

	activityID, err := strconv.ParseInt(activityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	var req models.UpdateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/activities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), activityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("PATCH /admin/activities/{id} - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, activities.ErrNameConflict):
			h.logger.Warn("PATCH /admin/activities/{id} - Name conflict: activity_id=%d", activityID)
			handlers.RespondConflict(w, msgNameConflict)

		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/activities/{id} - Invalid data: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/activities/{id} - Failed to update activity: activity_id=%d, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/activities/{id} - Activity updated successfully: activity_id=%d", activityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
