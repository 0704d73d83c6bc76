package memberships

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	membershipRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/membership"
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

type fakeMembershipRepo struct {
	membership *domain.Membership
	getErr     error
	createErr  error
	updateErr  error
	due        []*domain.Membership

	created *domain.Membership
	updated *domain.Membership
	updates int
}

func (f *fakeMembershipRepo) Create(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m.ID = 1
	f.created = m
	return m, nil
}

func (f *fakeMembershipRepo) GetByUserID(_ context.Context, _ int64) (*domain.Membership, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.membership
	return &copied, nil
}

func (f *fakeMembershipRepo) Update(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = m
	f.updates++
	return m, nil
}

func (f *fakeMembershipRepo) ListDueForRenewal(_ context.Context) ([]*domain.Membership, error) {
	return f.due, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeMembershipRepo) *Service {
	return NewService(repo, fakeTxManager{}, fixedTimeProvider{now: testNow}, nopLogger{})
}

func TestCreate_DerivesPriceAndExpirationFromTier(t *testing.T) {
	repo := &fakeMembershipRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateMembershipRequest{
		UserID:    7,
		Tier:      "Premium",
		AutoRenew: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "25.00", resp.Price)
	assert.Equal(t, "2025-10-15", resp.StartDate)
	assert.Equal(t, "2026-01-13", resp.ExpirationDate) // +90 дней
	assert.Equal(t, string(domain.MembershipActive), resp.Status)
	assert.True(t, resp.AutoRenew)
}

func TestCreate_UnknownTier(t *testing.T) {
	svc := newTestService(&fakeMembershipRepo{})

	_, err := svc.Create(context.Background(), &models.CreateMembershipRequest{
		UserID: 7,
		Tier:   "Platinum",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_AlreadyExists(t *testing.T) {
	repo := &fakeMembershipRepo{createErr: membershipRepo.ErrMembershipExists}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateMembershipRequest{
		UserID: 7,
		Tier:   "Basic",
	})

	assert.ErrorIs(t, err, ErrMembershipExists)
}

func TestGet_ExpiredWithoutAutoRenewIsDemoted(t *testing.T) {
	repo := &fakeMembershipRepo{
		membership: &domain.Membership{
			ID:             1,
			UserID:         7,
			Tier:           domain.TierBasic,
			Price:          decimal.New(1000, -2),
			StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			AutoRenew:      false,
			Status:         domain.MembershipActive,
		},
	}
	svc := newTestService(repo)

	resp, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, string(domain.MembershipExpired), resp.Status)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.MembershipExpired, repo.updated.Status)
}

func TestGet_ExpiredWithAutoRenewIsRenewedFromToday(t *testing.T) {
	repo := &fakeMembershipRepo{
		membership: &domain.Membership{
			ID:             1,
			UserID:         7,
			Tier:           domain.TierVip,
			Price:          decimal.New(5000, -2),
			StartDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
			AutoRenew:      true,
			Status:         domain.MembershipExpired,
		},
	}
	svc := newTestService(repo)

	resp, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, string(domain.MembershipActive), resp.Status)
	assert.Equal(t, "2025-10-15", resp.StartDate)
	assert.Equal(t, "2026-04-13", resp.ExpirationDate) // +180 дней
}

func TestGet_UnexpiredIsNotPersisted(t *testing.T) {
	repo := &fakeMembershipRepo{
		membership: &domain.Membership{
			ID:             1,
			UserID:         7,
			Tier:           domain.TierBasic,
			Price:          decimal.New(1000, -2),
			StartDate:      time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
			Status:         domain.MembershipActive,
		},
	}
	svc := newTestService(repo)

	_, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Zero(t, repo.updates)
}

func TestGet_NotFound(t *testing.T) {
	repo := &fakeMembershipRepo{getErr: membershipRepo.ErrMembershipNotFound}
	svc := newTestService(repo)

	_, err := svc.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestUpdate_TierChangeRestartsMembership(t *testing.T) {
	repo := &fakeMembershipRepo{
		membership: &domain.Membership{
			ID:             1,
			UserID:         7,
			Tier:           domain.TierBasic,
			Price:          decimal.New(1000, -2),
			StartDate:      time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
			Status:         domain.MembershipActive,
		},
	}
	svc := newTestService(repo)

	newTier := "Premium"
	resp, err := svc.Update(context.Background(), &models.UpdateMembershipRequest{
		UserID: 7,
		Tier:   &newTier,
	})

	require.NoError(t, err)
	assert.Equal(t, "Premium", resp.Tier)
	assert.Equal(t, "25.00", resp.Price)
	assert.Equal(t, "2025-10-15", resp.StartDate)
	assert.Equal(t, "2026-01-13", resp.ExpirationDate)
	assert.Equal(t, string(domain.MembershipActive), resp.Status)
}

func TestUpdate_AutoRenewToggleKeepsTier(t *testing.T) {
	repo := &fakeMembershipRepo{
		membership: &domain.Membership{
			ID:             1,
			UserID:         7,
			Tier:           domain.TierBasic,
			Price:          decimal.New(1000, -2),
			StartDate:      time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
			AutoRenew:      false,
			Status:         domain.MembershipActive,
		},
	}
	svc := newTestService(repo)

	autoRenew := true
	resp, err := svc.Update(context.Background(), &models.UpdateMembershipRequest{
		UserID:    7,
		AutoRenew: &autoRenew,
	})

	require.NoError(t, err)
	assert.True(t, resp.AutoRenew)
	assert.Equal(t, "Basic", resp.Tier)
	assert.Equal(t, "2025-10-01", resp.StartDate)
}

func TestUpdate_UnknownTier(t *testing.T) {
	svc := newTestService(&fakeMembershipRepo{})

	badTier := "Gold"
	_, err := svc.Update(context.Background(), &models.UpdateMembershipRequest{
		UserID: 7,
		Tier:   &badTier,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeMembershipRepo{getErr: membershipRepo.ErrMembershipNotFound}
	svc := newTestService(repo)

	autoRenew := true
	_, err := svc.Update(context.Background(), &models.UpdateMembershipRequest{
		UserID:    7,
		AutoRenew: &autoRenew,
	})

	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestRenewDue_RenewsOnlyAutoRenewable(t *testing.T) {
	repo := &fakeMembershipRepo{
		due: []*domain.Membership{
			{
				ID:             1,
				UserID:         7,
				Tier:           domain.TierBasic,
				Price:          decimal.New(1000, -2),
				StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
				ExpirationDate: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
				AutoRenew:      true,
				Status:         domain.MembershipExpired,
			},
			{
				ID:             2,
				UserID:         8,
				Tier:           domain.TierPremium,
				Price:          decimal.New(2500, -2),
				StartDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				ExpirationDate: time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
				AutoRenew:      true,
				Status:         domain.MembershipExpired,
			},
		},
	}
	svc := newTestService(repo)

	renewed, err := svc.RenewDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, renewed)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.MembershipActive, repo.updated.Status)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), repo.updated.StartDate)
}

func TestRenewDue_ContinuesAfterUpdateError(t *testing.T) {
	repo := &fakeMembershipRepo{
		due: []*domain.Membership{
			{
				ID:             1,
				UserID:         7,
				Tier:           domain.TierBasic,
				StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
				ExpirationDate: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
				AutoRenew:      true,
				Status:         domain.MembershipExpired,
			},
		},
		updateErr: errors.New("connection reset"),
	}
	svc := newTestService(repo)

	renewed, err := svc.RenewDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, renewed)
}
