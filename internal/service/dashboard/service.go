package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	"github.com/m04kA/SMC-LeisureService/internal/service/dashboard/models"
)

// latestLimit количество последних записей в сводке
const latestLimit = 10

// Service сервис сводных показателей для админской панели
type Service struct {
	bookingRepo    BookingRepository
	promotionRepo  PromotionRepository
	membershipRepo MembershipRepository
	paymentRepo    PaymentRepository
	userClient     UserServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	bookingRepo BookingRepository,
	promotionRepo PromotionRepository,
	membershipRepo MembershipRepository,
	paymentRepo PaymentRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		promotionRepo:  promotionRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
		userClient:     userClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetStats собирает сводные показатели
// Счетчики читаются в одной read-only транзакции, чтобы цифры были согласованы
// между собой; недоступность UserService сводку не ломает
func (s *Service) GetStats(ctx context.Context) (*models.DashboardResponse, error) {
	s.logger.Info("GetStats: collecting dashboard stats")

	resp := &models.DashboardResponse{}

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		totalBookings, err := s.bookingRepo.CountAll(ctx)
		if err != nil {
			return fmt.Errorf("count bookings: %v", err)
		}

		activePromotions, err := s.promotionRepo.CountActive(ctx)
		if err != nil {
			return fmt.Errorf("count active promotions: %v", err)
		}

		activeMemberships, err := s.membershipRepo.CountByStatus(ctx, domain.MembershipActive)
		if err != nil {
			return fmt.Errorf("count active memberships: %v", err)
		}

		totalRevenue, err := s.paymentRepo.SumAmount(ctx)
		if err != nil {
			return fmt.Errorf("sum payments: %v", err)
		}

		latestBookings, err := s.bookingRepo.GetLatest(ctx, latestLimit)
		if err != nil {
			return fmt.Errorf("latest bookings: %v", err)
		}

		latestPayments, err := s.paymentRepo.GetLatest(ctx, latestLimit)
		if err != nil {
			return fmt.Errorf("latest payments: %v", err)
		}

		resp.TotalBookings = totalBookings
		resp.ActivePromotions = activePromotions
		resp.ActiveMemberships = activeMemberships
		resp.TotalRevenue = totalRevenue.StringFixed(2)
		resp.LatestBookings = models.FromDomainBookings(latestBookings)
		resp.LatestPayments = models.FromDomainPayments(latestPayments)
		return nil
	})

	if err != nil {
		s.logger.Error("GetStats: failed to collect stats: %v", err)
		return nil, fmt.Errorf("%w: GetStats - %v", ErrInternal, err)
	}

	// Количество пользователей живет в другом сервисе - при его недоступности
	// отдаем сводку без этого поля
	if totalUsers, err := s.userClient.CountUsers(ctx); err != nil {
		s.logger.Warn("GetStats: user count unavailable: %v", err)
	} else {
		resp.TotalUsers = &totalUsers
	}

	s.logger.Info("GetStats: successfully collected dashboard stats")
	return resp, nil
}
