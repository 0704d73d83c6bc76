package create_activity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные активности"
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

// Handle POST /api/v1/admin/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrNameConflict):
			h.logger.Warn("POST /admin/activities - Name conflict: name=%s", req.Name)
			handlers.RespondConflict(w, msgNameConflict)

		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("POST /admin/activities - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/activities - Failed to create activity: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/activities - Activity created successfully: activity_id=%d, name=%s",
		result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
