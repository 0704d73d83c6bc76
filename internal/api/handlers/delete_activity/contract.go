package delete_activity

import (
	"context"
)

// ActivityService интерфейс сервиса активностей
type ActivityService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
