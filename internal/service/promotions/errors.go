package promotions

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда промоакция не найдена
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrPromotionInvalid возвращается, когда промокод существует,
	// но не действует на текущую дату или отключен
	ErrPromotionInvalid = errors.New("promotion is not valid")

	// ErrCodeConflict возвращается при попытке создать промоакцию с уже занятым кодом
	ErrCodeConflict = errors.New("promotion code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
