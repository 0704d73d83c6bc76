package list_promotions

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

// PromotionService интерфейс сервиса промоакций
type PromotionService interface {
	List(ctx context.Context) (*models.PromotionListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
