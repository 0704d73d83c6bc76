package get_membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/api/middleware"
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgNotFound      = "абонемент не найден"
)

type Handler struct {
	service MembershipService
	logger  Logger
}

func NewHandler(service MembershipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/membership
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/membership - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь может смотреть только свой абонемент
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/membership - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/membership - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Перед отдачей сервис сам актуализирует статус абонемента
	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, memberships.ErrMembershipNotFound) {
			h.logger.Warn("GET /users/{userId}/membership - Membership not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /users/{userId}/membership - Failed to get membership: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/membership - Membership retrieved successfully: user_id=%d, status=%s",
		userID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
