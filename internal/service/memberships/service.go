package memberships

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	membershipRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/membership"
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

// Service сервис для работы с абонементами
// Правила жизненного цикла (domain.EvaluateMembership) применяются при каждом
// сохранении и при чтении, поэтому статус абонемента всегда актуален
type Service struct {
	membershipRepo MembershipRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(
	membershipRepo MembershipRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		txManager:      txManager,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Create оформляет абонемент для пользователя
// Цена и дата окончания выводятся из тарифа, у пользователя может быть
// только один абонемент
func (s *Service) Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Create: creating membership for user=%d, tier=%s", req.UserID, req.Tier)

	tier := domain.MembershipTier(req.Tier)
	if !domain.IsValidTier(tier) {
		s.logger.Warn("Create: invalid tier=%s for user=%d", req.Tier, req.UserID)
		return nil, fmt.Errorf("%w: unknown tier", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	membership := domain.EvaluateMembership(domain.Membership{
		UserID:    req.UserID,
		Tier:      tier,
		StartDate: now,
		AutoRenew: req.AutoRenew,
		Status:    domain.MembershipActive,
	}, now)

	created, err := s.membershipRepo.Create(ctx, &membership)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipExists) {
			s.logger.Warn("Create: membership already exists for user=%d", req.UserID)
			return nil, ErrMembershipExists
		}
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created membership id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainMembership(created), nil
}

// Get возвращает абонемент пользователя
// Перед отдачей применяет правила жизненного цикла и сохраняет изменения,
// так что просроченный абонемент демотируется (или продлевается) прямо при чтении
func (s *Service) Get(ctx context.Context, userID int64) (*models.MembershipResponse, error) {
	s.logger.Info("Get: fetching membership for user=%d", userID)

	var result *domain.Membership
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		membership, err := s.evaluateAndPersist(ctx, userID)
		if err != nil {
			return err
		}
		result = membership
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			s.logger.Warn("Get: membership not found for user=%d", userID)
			return nil, ErrMembershipNotFound
		}
		s.logger.Error("Get: failed to fetch membership for user=%d: %v", userID, err)
		return nil, err
	}

	s.logger.Info("Get: successfully fetched membership id=%d for user=%d, status=%s",
		result.ID, userID, result.Status)
	return models.FromDomainMembership(result), nil
}

// Update изменяет настройки абонемента пользователя
// После изменения тарифа производные поля пересчитываются заново
func (s *Service) Update(ctx context.Context, req *models.UpdateMembershipRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Update: updating membership for user=%d", req.UserID)

	var tier *domain.MembershipTier
	if req.Tier != nil {
		t := domain.MembershipTier(*req.Tier)
		if !domain.IsValidTier(t) {
			s.logger.Warn("Update: invalid tier=%s for user=%d", *req.Tier, req.UserID)
			return nil, fmt.Errorf("%w: unknown tier", ErrInvalidInput)
		}
		tier = &t
	}

	var result *domain.Membership
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		membership, err := s.membershipRepo.GetByUserID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
				return ErrMembershipNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if tier != nil && *tier != membership.Tier {
			// Смена тарифа перезапускает абонемент с текущей даты
			// Цена обнуляется, чтобы правила жизненного цикла вывели её заново
			membership.Tier = *tier
			membership.Price = decimal.Zero
			membership.StartDate = s.timeProvider.Now()
			membership.ExpirationDate = domain.CalculateExpirationDate(*tier, membership.StartDate)
			membership.Status = domain.MembershipActive
		}
		if req.AutoRenew != nil {
			membership.AutoRenew = *req.AutoRenew
		}

		evaluated := domain.EvaluateMembership(*membership, s.timeProvider.Now())
		updated, err := s.membershipRepo.Update(ctx, &evaluated)
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			s.logger.Warn("Update: membership not found for user=%d", req.UserID)
			return nil, ErrMembershipNotFound
		}
		s.logger.Error("Update: failed to update membership for user=%d: %v", req.UserID, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated membership id=%d for user=%d", result.ID, req.UserID)
	return models.FromDomainMembership(result), nil
}

// RenewDue продлевает просроченные абонементы с включенным автопродлением
// Вызывается периодической задачей, возвращает количество продленных абонементов
func (s *Service) RenewDue(ctx context.Context) (int, error) {
	s.logger.Info("RenewDue: starting renewal sweep")

	due, err := s.membershipRepo.ListDueForRenewal(ctx)
	if err != nil {
		s.logger.Error("RenewDue: repository error: %v", err)
		return 0, fmt.Errorf("%w: RenewDue - repository error: %v", ErrInternal, err)
	}

	renewed := 0
	for _, m := range due {
		// Каждое продление в отдельной транзакции, чтобы ошибка на одном
		// абонементе не откатывала остальные
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			evaluated := domain.EvaluateMembership(*m, s.timeProvider.Now())
			if evaluated.Status != domain.MembershipActive {
				return nil
			}

			if _, err := s.membershipRepo.Update(ctx, &evaluated); err != nil {
				return err
			}
			renewed++
			return nil
		})

		if err != nil {
			s.logger.Error("RenewDue: failed to renew membership id=%d: %v", m.ID, err)
			continue
		}
	}

	s.logger.Info("RenewDue: renewed %d of %d due memberships", renewed, len(due))
	return renewed, nil
}

// evaluateAndPersist читает абонемент, применяет правила жизненного цикла
// и сохраняет результат, если состояние изменилось
func (s *Service) evaluateAndPersist(ctx context.Context, userID int64) (*domain.Membership, error) {
	membership, err := s.membershipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("%w: evaluateAndPersist - repository error: %v", ErrInternal, err)
	}

	evaluated := domain.EvaluateMembership(*membership, s.timeProvider.Now())
	if membershipChanged(membership, &evaluated) {
		updated, err := s.membershipRepo.Update(ctx, &evaluated)
		if err != nil {
			return nil, fmt.Errorf("%w: evaluateAndPersist - repository error: %v", ErrInternal, err)
		}
		return updated, nil
	}

	return membership, nil
}

// membershipChanged сравнивает поля, которые меняют правила жизненного цикла
func membershipChanged(before, after *domain.Membership) bool {
	return before.Status != after.Status ||
		!before.Price.Equal(after.Price) ||
		!before.StartDate.Equal(after.StartDate) ||
		!before.ExpirationDate.Equal(after.ExpirationDate)
}
