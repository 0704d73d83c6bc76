package review_payment

import (
	"context"

	reviewPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/review_payment"
)

// ReviewPaymentUseCase интерфейс use case расчета суммы к оплате
type ReviewPaymentUseCase interface {
	Execute(ctx context.Context, req *reviewPayment.Request) (*reviewPayment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
