package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-LeisureService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ActivityID int64    `json:"activityId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"` // времена начала "HH:MM" по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		ActivityID: resp.ActivityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(activityID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ActivityID: activityID,
		Date:       date,
	}, nil
}
