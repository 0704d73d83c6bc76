package memberships

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Membership, error)
	Update(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	ListDueForRenewal(ctx context.Context) ([]*domain.Membership, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
