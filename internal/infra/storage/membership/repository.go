package membership

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LeisureService/pkg/psqlbuilder"
)

// membershipColumns полный набор колонок таблицы memberships
var membershipColumns = []string{
	"id",
	"user_id",
	"tier",
	"price",
	"start_date",
	"expiration_date",
	"auto_renew",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с абонементами
// У пользователя может быть не более одного абонемента (уникальный индекс по user_id)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый абонемент
// При нарушении уникальности user_id возвращает ErrMembershipExists
func (r *Repository) Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("memberships").
		Columns("user_id", "tier", "price", "start_date", "expiration_date", "auto_renew", "status").
		Values(m.UserID, m.Tier, m.Price, m.StartDate, m.ExpirationDate, m.AutoRenew, m.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrMembershipExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByUserID получает абонемент пользователя
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"user_id": userID})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	m, err := scanMembership(row)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan membership: %v", ErrScanRow, err)
	}

	return m, nil
}

// Update сохраняет изменяемые поля абонемента
// Обновляет результат применения правил жизненного цикла
func (r *Repository) Update(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("memberships").
		Set("tier", m.Tier).
		Set("price", m.Price).
		Set("start_date", m.StartDate).
		Set("expiration_date", m.ExpirationDate).
		Set("auto_renew", m.AutoRenew).
		Set("status", m.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// ListDueForRenewal возвращает абонементы со статусом Expired и включенным
// автопродлением - кандидаты для периодической задачи продления
func (r *Repository) ListDueForRenewal(ctx context.Context) ([]*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{
			"status":     domain.MembershipExpired,
			"auto_renew": true,
		}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForRenewal - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForRenewal - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDueForRenewal - scan row: %v", ErrScanRow, err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDueForRenewal - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}

// CountByStatus возвращает количество абонементов в заданном статусе (для дашборда)
func (r *Repository) CountByStatus(ctx context.Context, status domain.MembershipStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("memberships").
		Where(squirrel.Eq{"status": status}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanMembership сканирует одну строку в абонемент
func scanMembership(row rowScanner) (*domain.Membership, error) {
	var m domain.Membership
	var startDate, expirationDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Tier,
		&m.Price,
		&startDate,
		&expirationDate,
		&m.AutoRenew,
		&m.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.StartDate = startDate.Time
	m.ExpirationDate = expirationDate.Time
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// isUniqueViolation проверяет ошибку нарушения уникального индекса (23505)
func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
