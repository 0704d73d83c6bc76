package create_promotion

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

// PromotionService интерфейс сервиса промоакций
type PromotionService interface {
	Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
