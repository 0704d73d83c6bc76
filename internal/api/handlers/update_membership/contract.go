package update_membership

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

// MembershipService интерфейс сервиса абонементов
type MembershipService interface {
	Update(ctx context.Context, req *models.UpdateMembershipRequest) (*models.MembershipResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
