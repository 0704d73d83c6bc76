package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LeisureService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ActivityID int64     // ID активности
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ActivityID int64              // ID активности
	Date       time.Time          // Дата, на которую запрашивались слоты
	Slots      []types.TimeString // Свободные времена начала по возрастанию
}
