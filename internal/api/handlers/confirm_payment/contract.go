package confirm_payment

import (
	"context"

	confirmPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/confirm_payment"
)

// ConfirmPaymentUseCase интерфейс use case подтверждения оплаты
type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
