package delete_promotion

import (
	"context"
)

// PromotionService интерфейс сервиса промоакций
type PromotionService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
