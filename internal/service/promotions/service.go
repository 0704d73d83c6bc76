package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
)

// Service сервис для работы с промоакциями
type Service struct {
	promotionRepo PromotionRepository
	tokenSigner   TokenSigner
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса промоакций
func NewService(
	promotionRepo PromotionRepository,
	tokenSigner TokenSigner,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		tokenSigner:   tokenSigner,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Validate проверяет промокод на текущую дату
// При успехе выпускает подписанный токен, который клиент предъявляет
// при расчете и подтверждении оплаты
func (s *Service) Validate(ctx context.Context, req *models.ValidatePromotionRequest) (*models.ValidatePromotionResponse, error) {
	s.logger.Info("Validate: validating promotion code=%s", req.Code)

	if req.Code == "" {
		s.logger.Warn("Validate: empty promotion code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	promo, err := s.promotionRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Validate: promotion code=%s not found", req.Code)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Validate: repository error for code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if !promo.IsValidOn(now) {
		s.logger.Warn("Validate: promotion code=%s is not valid on %s", req.Code, now.Format(domain.DateFormat))
		return nil, ErrPromotionInvalid
	}

	token, err := s.tokenSigner.Issue(promo.ID, promo.Code, now)
	if err != nil {
		s.logger.Error("Validate: failed to issue token for code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Validate - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Validate: promotion code=%s is valid, discount=%s%%", req.Code, promo.DiscountPercentage.StringFixed(2))
	return &models.ValidatePromotionResponse{
		Valid:              true,
		PromotionID:        promo.ID,
		Code:               promo.Code,
		Description:        promo.Description,
		DiscountPercentage: promo.DiscountPercentage.StringFixed(2),
		Token:              token,
	}, nil
}

// Create создает новую промоакцию
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promotion code=%s", req.Code)

	pct, start, end, err := s.validatePromotionData(req.Code, req.DiscountPercentage, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.promotionRepo.Create(ctx, req.ToDomainPromotion(pct, start, end))
	if err != nil {
		if errors.Is(err, promotionRepo.ErrCodeConflict) {
			s.logger.Warn("Create: promotion code=%s already exists", req.Code)
			return nil, ErrCodeConflict
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created promotion id=%d", created.ID)
	return models.FromDomainPromotion(created), nil
}

// GetByID получает промоакцию по ID
// Доступно только администраторам
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PromotionResponse, error) {
	s.logger.Info("GetByID: fetching promotion id=%d", id)

	promo, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("GetByID: promotion id=%d not found", id)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("GetByID: repository error for promotion id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched promotion id=%d", id)
	return models.FromDomainPromotion(promo), nil
}

// List возвращает все промоакции
// Доступно только администраторам
func (s *Service) List(ctx context.Context) (*models.PromotionListResponse, error) {
	s.logger.Info("List: fetching promotions")

	promotions, err := s.promotionRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d promotions", len(promotions))
	return models.FromDomainPromotionList(promotions), nil
}

// Update обновляет существующую промоакцию
// Доступно только администраторам
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Update: updating promotion id=%d", id)

	promo, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promotion id=%d not found", id)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Update: repository error for promotion id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.applyUpdate(promo, req); err != nil {
		s.logger.Warn("Update: validation failed for promotion id=%d: %v", id, err)
		return nil, err
	}

	if err := s.promotionRepo.Update(ctx, promo); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promotion id=%d not found during update", id)
			return nil, ErrPromotionNotFound
		}
		if errors.Is(err, promotionRepo.ErrCodeConflict) {
			s.logger.Warn("Update: promotion code=%s already exists", promo.Code)
			return nil, ErrCodeConflict
		}
		s.logger.Error("Update: repository error for promotion id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated promotion id=%d", id)
	return models.FromDomainPromotion(promo), nil
}

// Delete удаляет промоакцию по ID
// Доступно только администраторам, у связанных платежей ссылка обнуляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting promotion id=%d", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promotion id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promotion id=%d", id)
	return nil
}

// Вспомогательные методы

// applyUpdate применяет частичное обновление с валидацией полей
func (s *Service) applyUpdate(promo *domain.Promotion, req *models.UpdatePromotionRequest) error {
	if req.Code != nil {
		if err := validateCode(*req.Code); err != nil {
			return err
		}
		promo.Code = *req.Code
	}
	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.DiscountPercentage != nil {
		pct, err := parseDiscountPercentage(*req.DiscountPercentage)
		if err != nil {
			return err
		}
		promo.DiscountPercentage = pct
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate, "startDate")
		if err != nil {
			return err
		}
		promo.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate, "endDate")
		if err != nil {
			return err
		}
		promo.EndDate = end
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if promo.EndDate.Before(promo.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return nil
}

// validatePromotionData валидирует параметры промоакции и парсит поля
func (s *Service) validatePromotionData(code, pctStr, startStr, endStr string) (decimal.Decimal, time.Time, time.Time, error) {
	if err := validateCode(code); err != nil {
		return decimal.Zero, time.Time{}, time.Time{}, err
	}

	pct, err := parseDiscountPercentage(pctStr)
	if err != nil {
		return decimal.Zero, time.Time{}, time.Time{}, err
	}

	start, err := parseDate(startStr, "startDate")
	if err != nil {
		return decimal.Zero, time.Time{}, time.Time{}, err
	}

	end, err := parseDate(endStr, "endDate")
	if err != nil {
		return decimal.Zero, time.Time{}, time.Time{}, err
	}

	if end.Before(start) {
		return decimal.Zero, time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return pct, start, end, nil
}

// validateCode проверяет промокод
func validateCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(code) > domain.MaxCodeLength {
		return fmt.Errorf("%w: code must be at most %d characters", ErrInvalidInput, domain.MaxCodeLength)
	}
	return nil
}

// parseDiscountPercentage парсит процент скидки, допустимый диапазон [0, 100]
func parseDiscountPercentage(pctStr string) (decimal.Decimal, error) {
	pct, err := decimal.NewFromString(pctStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: discountPercentage must be a decimal number", ErrInvalidInput)
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("%w: discountPercentage must be between 0 and 100", ErrInvalidInput)
	}
	return pct, nil
}

// parseDate парсит дату в формате YYYY-MM-DD
func parseDate(dateStr, field string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be in format YYYY-MM-DD", ErrInvalidInput, field)
	}
	return date, nil
}
