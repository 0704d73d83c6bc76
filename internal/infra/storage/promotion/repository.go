package promotion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LeisureService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolationCode = "23505"

// promotionColumns полный набор колонок таблицы promotions
var promotionColumns = []string{
	"id",
	"code",
	"description",
	"discount_percentage",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с промоакциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промоакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую промоакцию
// Нарушение уникальности кода возвращается как ErrCodeConflict
func (r *Repository) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns("code", "description", "discount_percentage", "start_date", "end_date", "is_active").
		Values(promo.Code, promo.Description, promo.DiscountPercentage, promo.StartDate, promo.EndDate, promo.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// GetByID получает промоакцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	promo, err := scanPromotion(row)
	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan promotion: %v", ErrScanRow, err)
	}

	return promo, nil
}

// GetByCode получает промоакцию по точному совпадению кода
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	promo, err := scanPromotion(row)
	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promotion: %v", ErrScanRow, err)
	}

	return promo, nil
}

// List возвращает все промоакции, сначала новые по дате начала
func (r *Repository) List(ctx context.Context) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		OrderBy("start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promos := make([]*domain.Promotion, 0)
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promos, nil
}

// CountActive возвращает количество активных промоакций (для дашборда)
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("promotions").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет промоакцию
func (r *Repository) Update(ctx context.Context, promo *domain.Promotion) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("code", promo.Code).
		Set("description", promo.Description).
		Set("discount_percentage", promo.DiscountPercentage).
		Set("start_date", promo.StartDate).
		Set("end_date", promo.EndDate).
		Set("is_active", promo.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promo.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCodeConflict
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

// Delete удаляет промоакцию
// В платежах, ссылающихся на неё, promotion_id обнуляется на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPromotion сканирует одну строку в промоакцию
func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var promo domain.Promotion
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Description,
		&promo.DiscountPercentage,
		&promo.StartDate,
		&promo.EndDate,
		&promo.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
