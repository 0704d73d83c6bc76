package update_promotion

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

// PromotionService интерфейс сервиса промоакций
type PromotionService interface {
	Update(ctx context.Context, id int64, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
