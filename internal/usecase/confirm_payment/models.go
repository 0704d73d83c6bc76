package confirm_payment

import "time"

// Request модель запроса на подтверждение оплаты
type Request struct {
	UserID     int64  // ID пользователя
	BookingID  int64  // ID бронирования
	PromoToken string // Промо-токен из валидации кода (опционально)
}

// Response модель ответа с созданным платежом
type Response struct {
	PaymentID   int64     // ID платежа
	BookingID   int64     // ID бронирования
	Status      string    // Новый статус бронирования
	Amount      string    // Списанная сумма, 2 знака после запятой
	Reference   string    // Уникальная ссылка платежа
	PromotionID *int64    // ID примененной промоакции
	CreatedAt   time.Time // Время платежа
}
