package update_membership

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
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "абонемент не найден"
	msgInvalidTier        = "некорректный уровень абонемента"
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

// Handle PATCH /api/v1/users/{userId}/membership
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /users/{userId}/membership - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь может менять только свой абонемент
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /users/{userId}/membership - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("PATCH /users/{userId}/membership - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateMembershipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{userId}/membership - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipNotFound):
			h.logger.Warn("PATCH /users/{userId}/membership - Membership not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, memberships.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{userId}/membership - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTier)

		default:
			h.logger.Error("PATCH /users/{userId}/membership - Failed to update membership: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{userId}/membership - Membership updated successfully: user_id=%d, tier=%s",
		userID, result.Tier)
	handlers.RespondJSON(w, http.StatusOK, result)
}
