package create_booking

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("create_booking: activity not found")

	// ErrActivityUnavailable возвращается, когда активность закрыта для бронирования
	ErrActivityUnavailable = errors.New("create_booking: activity is not available for booking")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в дневное окно слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDuration возвращается, когда длительность не входит в список допустимых
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
