package get_activity

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/activities/models"
)

// ActivityService интерфейс сервиса активностей
type ActivityService interface {
	GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
