package activities

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
