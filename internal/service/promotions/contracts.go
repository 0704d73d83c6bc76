package promotions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/pkg/promotoken"
)

// PromotionRepository интерфейс репозитория промоакций
type PromotionRepository interface {
	Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Update(ctx context.Context, promo *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
}

// TokenSigner интерфейс для выпуска и проверки промо-токенов
// Токен фиксирует результат валидации кода между запросами
type TokenSigner interface {
	Issue(promotionID int64, code string, now time.Time) (string, error)
	Parse(tokenString string) (*promotoken.Claims, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
