package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время начала должно быть одним из почасовых слотов дневного окна
	if !domain.IsCatalogSlot(req.StartTime) {
		return fmt.Errorf("%w: startTime must be an hourly slot between %02d:00 and %02d:00",
			ErrInvalidTimeSlot, domain.SlotWindowOpenHour, domain.SlotWindowCloseHour)
	}

	// Длительность из фиксированного списка, 0 заменяется значением по умолчанию
	if req.DurationMinutes != 0 && !domain.IsValidDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidDuration, domain.DurationChoices)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isSlotTaken проверяет, занято ли время начала активным бронированием
func isSlotTaken(startTime types.TimeString, bookedTimes []types.TimeString) bool {
	for _, booked := range bookedTimes {
		if booked == startTime {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
