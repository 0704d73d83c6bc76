package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	activityRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	userClient "github.com/m04kA/SMC-LeisureService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	activityRepository ActivityRepository,
	userServiceClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		activityRepo: activityRepository,
		userClient:   userServiceClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование создается в статусе pending и занимает слот до отмены
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, activity=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.ActivityID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата бронирования не может быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Длительность по умолчанию
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 5. Проверяем пользователя; при недоступности UserService бронирование
	// не блокируем
	if _, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Warn("CreateBooking: user check skipped for user=%d: %v", req.UserID, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активность
		activity, err := uc.activityRepo.GetByID(txCtx, req.ActivityID)
		if err != nil {
			if errors.Is(err, activityRepo.ErrActivityNotFound) {
				return ErrActivityNotFound
			}
			return fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
		}

		// 6.2. Закрытая активность не бронируется
		if !activity.CanBeBooked() {
			return ErrActivityUnavailable
		}

		// 6.3. Получаем занятые времена на дату с блокировкой (FOR UPDATE)
		bookedTimes, err := uc.bookingRepo.GetBookedTimes(txCtx, req.ActivityID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
		}

		// 6.4. Проверяем доступность слота
		if isSlotTaken(req.StartTime, bookedTimes) {
			return ErrSlotNotAvailable
		}

		// 6.5. Создаем бронирование с денормализацией данных активности
		booking := &domain.Booking{
			UserID:          req.UserID,
			ActivityID:      req.ActivityID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ActivityName:    activity.Name,
			ActivityPrice:   activity.Price,
		}

		// 6.6. Сохраняем бронирование
		// Уникальный индекс (activity, date, time) страхует от гонки,
		// которую не поймала проверка выше
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrActivityNotFound),
			errors.Is(err, ErrActivityUnavailable),
			errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: %v", err)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ActivityID:      result.ActivityID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ActivityName:    result.ActivityName,
		ActivityPrice:   result.ActivityPrice.StringFixed(2),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
