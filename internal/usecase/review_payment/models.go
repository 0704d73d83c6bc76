package review_payment

// Request модель запроса на расчет суммы к оплате
type Request struct {
	UserID     int64  // ID пользователя
	BookingID  int64  // ID бронирования
	PromoToken string // Промо-токен из валидации кода (опционально)
}

// Response модель ответа с расчетом суммы
// Расчет ничего не сохраняет - это предпросмотр перед подтверждением
type Response struct {
	BookingID          int64   // ID бронирования
	BaseAmount         string  // Сумма без скидки, 2 знака после запятой
	DiscountPercentage *string // Процент скидки, если применена промоакция
	TotalAmount        string  // Итоговая сумма к оплате
	PromotionID        *int64  // ID примененной промоакции
}
