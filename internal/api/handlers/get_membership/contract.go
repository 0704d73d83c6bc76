package get_membership

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

// MembershipService интерфейс сервиса абонементов
type MembershipService interface {
	Get(ctx context.Context, userID int64) (*models.MembershipResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
