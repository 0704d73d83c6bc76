package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	activityRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/activity"
	"github.com/m04kA/SMC-LeisureService/internal/service/activities/models"
)

// Service сервис для работы с каталогом активностей
type Service struct {
	activityRepo ActivityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса активностей
func NewService(activityRepo ActivityRepository, logger Logger) *Service {
	return &Service{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Create создает новую активность
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Create: creating activity name=%s", req.Name)

	// 1. Валидируем входные данные
	price, err := s.validateActivityData(req.Name, req.Description, req.Price)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем активность
	created, err := s.activityRepo.Create(ctx, req.ToDomainActivity(price))
	if err != nil {
		if errors.Is(err, activityRepo.ErrNameConflict) {
			s.logger.Warn("Create: activity name=%s already exists", req.Name)
			return nil, ErrNameConflict
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created activity id=%d", created.ID)
	return models.FromDomainActivity(created), nil
}

// GetByID получает активность по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error) {
	s.logger.Info("GetByID: fetching activity id=%d", id)

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("GetByID: activity id=%d not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("GetByID: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched activity id=%d", id)
	return models.FromDomainActivity(activity), nil
}

// List возвращает каталог активностей
// Публичный метод отдает только доступные для бронирования, админский - все
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.ActivityListResponse, error) {
	s.logger.Info("List: fetching activities, onlyAvailable=%t", onlyAvailable)

	activities, err := s.activityRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d activities", len(activities))
	return models.FromDomainActivityList(activities), nil
}

// Update обновляет существующую активность
// Доступно только администраторам
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Update: updating activity id=%d", id)

	// 1. Получаем существующую активность
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Update: activity id=%d not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("Update: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Парсим цену, если она указана
	var price *decimal.Decimal
	if req.Price != nil {
		parsed, err := parsePrice(*req.Price)
		if err != nil {
			s.logger.Warn("Update: invalid price=%s for activity id=%d", *req.Price, id)
			return nil, err
		}
		price = &parsed
	}

	// 3. Применяем обновления и валидируем результат
	req.ApplyToActivity(activity, price)
	if _, err := s.validateActivityData(activity.Name, activity.Description, activity.Price.StringFixed(2)); err != nil {
		s.logger.Warn("Update: validation failed for activity id=%d: %v", id, err)
		return nil, err
	}

	// 4. Сохраняем изменения
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Update: activity id=%d not found during update", id)
			return nil, ErrActivityNotFound
		}
		if errors.Is(err, activityRepo.ErrNameConflict) {
			s.logger.Warn("Update: activity name=%s already exists", activity.Name)
			return nil, ErrNameConflict
		}
		s.logger.Error("Update: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated activity id=%d", id)
	return models.FromDomainActivity(activity), nil
}

// Delete удаляет активность по ID
// Доступно только администраторам, связанные бронирования удаляются каскадно
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting activity id=%d", id)

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Delete: activity id=%d not found", id)
			return ErrActivityNotFound
		}
		s.logger.Error("Delete: repository error for activity id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted activity id=%d", id)
	return nil
}

// Вспомогательные методы

// validateActivityData валидирует параметры активности и парсит цену
func (s *Service) validateActivityData(name, description, priceStr string) (decimal.Decimal, error) {
	if name == "" {
		return decimal.Zero, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return decimal.Zero, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if len(description) > domain.MaxDescriptionLength {
		return decimal.Zero, fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return parsePrice(priceStr)
}

// parsePrice парсит цену из строки, цена не может быть отрицательной
func parsePrice(priceStr string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price must be a decimal number", ErrInvalidInput)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return price.Round(2), nil
}
