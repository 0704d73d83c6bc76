package renewal

import "context"

// MembershipService интерфейс сервиса абонементов
type MembershipService interface {
	RenewDue(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
