package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	activityRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/activity"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	activityRepo ActivityRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	activityRepository ActivityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		activityRepo: activityRepository,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Слоты - почасовые времена начала из дневного окна минус занятые активными
// бронированиями; день без бронирований возвращает полный каталог
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: activity=%d, date=%s",
		req.ActivityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активность
	activity, err := uc.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailableSlots: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 3. Закрытая активность не бронируется
	if !activity.CanBeBooked() {
		uc.logger.Warn("GetAvailableSlots: activity id=%d is not available", req.ActivityID)
		return nil, ErrActivityUnavailable
	}

	// 4. Получаем занятые времена на дату (отмененные бронирования слот освобождают)
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, req.ActivityID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 5. Вычитаем занятые времена из каталога слотов
	slots := domain.AvailableSlots(bookedTimes)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for activity=%d, date=%s",
		len(slots), len(domain.SlotCatalog()), req.ActivityID, req.Date.Format(domain.DateFormat))

	return &Response{
		ActivityID: req.ActivityID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
