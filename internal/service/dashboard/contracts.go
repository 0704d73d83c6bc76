package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountAll(ctx context.Context) (int64, error)
	GetLatest(ctx context.Context, limit uint64) ([]*domain.Booking, error)
}

// PromotionRepository интерфейс репозитория промоакций
type PromotionRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	CountByStatus(ctx context.Context, status domain.MembershipStatus) (int64, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	SumAmount(ctx context.Context) (decimal.Decimal, error)
	GetLatest(ctx context.Context, limit uint64) ([]*domain.Payment, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	CountUsers(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
