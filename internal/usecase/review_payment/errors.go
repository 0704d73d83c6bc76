package review_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("review_payment: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("review_payment: access denied")

	// ErrBookingNotPayable возвращается, когда бронирование нельзя оплатить
	ErrBookingNotPayable = errors.New("review_payment: booking cannot be paid")

	// ErrInvalidPromoToken возвращается при недействительном промо-токене
	ErrInvalidPromoToken = errors.New("review_payment: invalid promo token")

	// ErrPromotionExpired возвращается, когда промоакция перестала действовать
	ErrPromotionExpired = errors.New("review_payment: promotion is no longer valid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("review_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("review_payment: internal error")
)
