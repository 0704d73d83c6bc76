package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
// Некорректный запрос - это ошибка, а не пустой список слотов
func validateRequest(req *Request) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
