package activity

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

// activityColumns полный набор колонок таблицы activities
var activityColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с активностями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую активность
// Нарушение уникальности имени возвращается как ErrNameConflict
func (r *Repository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activities").
		Columns("name", "description", "price", "is_available").
		Values(activity.Name, activity.Description, activity.Price, activity.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&activity.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	activity.CreatedAt = createdAt.Time
	activity.UpdatedAt = updatedAt.Time

	return activity, nil
}

// GetByID получает активность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	activity, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan activity: %v", ErrScanRow, err)
	}

	return activity, nil
}

// List возвращает активности, опционально только доступные для бронирования
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(activityColumns...).
		From("activities").
		OrderBy("name ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

// Update обновляет активность
func (r *Repository) Update(ctx context.Context, activity *domain.Activity) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("activities").
		Set("name", activity.Name).
		Set("description", activity.Description).
		Set("price", activity.Price).
		Set("is_available", activity.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": activity.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameConflict
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// Delete удаляет активность
// Бронирования активности удаляются каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("activities").
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
		return ErrActivityNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanActivity сканирует одну строку в активность
func scanActivity(row rowScanner) (*domain.Activity, error) {
	var activity domain.Activity
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Price,
		&activity.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	activity.CreatedAt = createdAt.Time
	activity.UpdatedAt = updatedAt.Time

	return &activity, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
