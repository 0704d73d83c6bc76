package memberships

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда у пользователя нет абонемента
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrMembershipExists возвращается, когда у пользователя уже есть абонемент
	ErrMembershipExists = errors.New("membership already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
