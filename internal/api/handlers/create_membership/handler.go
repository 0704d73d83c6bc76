package create_membership

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LeisureService/internal/api/handlers"
	"github.com/m04kA/SMC-LeisureService/internal/api/middleware"
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTier        = "некорректный уровень абонемента"
	msgAlreadyExists      = "абонемент уже оформлен"
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

// Handle POST /api/v1/memberships
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /memberships - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateMembershipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /memberships - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipExists):
			h.logger.Warn("POST /memberships - Membership already exists: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, memberships.ErrInvalidInput):
			h.logger.Warn("POST /memberships - Invalid tier: user_id=%d, tier=%s", userID, req.Tier)
			handlers.RespondBadRequest(w, msgInvalidTier)

		default:
			h.logger.Error("POST /memberships - Failed to create membership: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /memberships - Membership created successfully: membership_id=%d, user_id=%d, tier=%s",
		result.ID, userID, result.Tier)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
