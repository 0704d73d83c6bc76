package membership

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда абонемент не найден
	ErrMembershipNotFound = errors.New("membership.repository: membership not found")

	// ErrMembershipExists возвращается при нарушении уникальности user_id
	ErrMembershipExists = errors.New("membership.repository: membership already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("membership.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("membership.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("membership.repository: failed to scan row")
)
