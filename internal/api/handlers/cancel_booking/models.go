package cancel_booking

import (
	"github.com/m04kA/SMC-LeisureService/internal/service/bookings/models"
)

// ToServiceRequest конвертирует данные запроса в модель сервиса
func ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID: userID,
	}
}
