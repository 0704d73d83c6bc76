package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LeisureService/pkg/psqlbuilder"
)

// paymentColumns полный набор колонок таблицы payments
var paymentColumns = []string{
	"id",
	"booking_id",
	"promotion_id",
	"amount",
	"reference",
	"created_at",
}

// Repository репозиторий для работы с платежами
// Платежи создаются один раз и не изменяются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый платеж
// Вызывается только внутри транзакции подтверждения оплаты - платеж и
// смена статуса бронирования фиксируются атомарно
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "promotion_id", "amount", "reference").
		Values(payment.BookingID, payment.PromotionID, payment.Amount, payment.Reference).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetByBookingID получает платеж по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	payment, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// SumAmount возвращает сумму всех платежей (для дашборда)
func (r *Repository) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		ToSql()

	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumAmount - build select query: %v", ErrBuildQuery, err)
	}

	var sum decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumAmount - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}

// GetLatest возвращает последние платежи (для дашборда)
func (r *Repository) GetLatest(ctx context.Context, limit uint64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetLatest - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLatest - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPayment сканирует одну строку в платеж
func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var bookingID, promotionID sql.NullInt64
	var createdAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&bookingID,
		&promotionID,
		&payment.Amount,
		&payment.Reference,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if bookingID.Valid {
		payment.BookingID = &bookingID.Int64
	}
	if promotionID.Valid {
		payment.PromotionID = &promotionID.Int64
	}
	payment.CreatedAt = createdAt.Time

	return &payment, nil
}
