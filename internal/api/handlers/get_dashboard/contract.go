package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-LeisureService/internal/service/dashboard/models"
)

// DashboardService интерфейс сервиса сводных показателей
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
