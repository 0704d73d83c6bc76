package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	ActivityID      int64            // ID активности
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах, 0 - значение по умолчанию
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	ActivityID      int64            // ID активности
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные
	ActivityName  string // Название активности
	ActivityPrice string // Цена за час, 2 знака после запятой

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
