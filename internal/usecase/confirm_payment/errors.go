package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("confirm_payment: access denied")

	// ErrBookingNotPayable возвращается, когда бронирование нельзя подтвердить
	// (уже подтверждено или отменено)
	ErrBookingNotPayable = errors.New("confirm_payment: booking cannot be confirmed")

	// ErrInvalidPromoToken возвращается при недействительном промо-токене
	ErrInvalidPromoToken = errors.New("confirm_payment: invalid promo token")

	// ErrPromotionExpired возвращается, когда промоакция перестала действовать
	ErrPromotionExpired = errors.New("confirm_payment: promotion is no longer valid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
