package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-LeisureService/internal/service/promotions/models"
	"github.com/m04kA/SMC-LeisureService/pkg/promotoken"
)

type fakePromotionRepo struct {
	promotion *domain.Promotion
	getErr    error
	createErr error
	updateErr error

	created *domain.Promotion
	updated *domain.Promotion
}

func (f *fakePromotionRepo) Create(_ context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 42
	f.created = p
	return p, nil
}

func (f *fakePromotionRepo) GetByID(_ context.Context, _ int64) (*domain.Promotion, error) {
	return f.promotion, f.getErr
}

func (f *fakePromotionRepo) GetByCode(_ context.Context, _ string) (*domain.Promotion, error) {
	return f.promotion, f.getErr
}

func (f *fakePromotionRepo) List(_ context.Context) ([]*domain.Promotion, error) {
	if f.promotion == nil {
		return nil, nil
	}
	return []*domain.Promotion{f.promotion}, nil
}

func (f *fakePromotionRepo) Update(_ context.Context, p *domain.Promotion) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = p
	return nil
}

func (f *fakePromotionRepo) Delete(_ context.Context, _ int64) error {
	return f.getErr
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

func activePromotion() *domain.Promotion {
	return &domain.Promotion{
		ID:                 42,
		Code:               "AUTUMN10",
		Description:        "Осенняя скидка",
		DiscountPercentage: decimal.New(10, 0),
		StartDate:          time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
}

func newTestService(repo *fakePromotionRepo) (*Service, *promotoken.Signer) {
	signer := promotoken.NewSigner("test-secret", time.Hour)
	return NewService(repo, signer, fixedTimeProvider{now: testNow}, nopLogger{}), signer
}

func TestValidate_IssuesToken(t *testing.T) {
	repo := &fakePromotionRepo{promotion: activePromotion()}
	svc, signer := newTestService(repo)

	resp, err := svc.Validate(context.Background(), &models.ValidatePromotionRequest{Code: "AUTUMN10"})

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, int64(42), resp.PromotionID)
	assert.Equal(t, "10.00", resp.DiscountPercentage)

	claims, err := signer.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PromotionID)
	assert.Equal(t, "AUTUMN10", claims.Code)
}

func TestValidate_EmptyCode(t *testing.T) {
	svc, _ := newTestService(&fakePromotionRepo{})

	_, err := svc.Validate(context.Background(), &models.ValidatePromotionRequest{Code: ""})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_NotFound(t *testing.T) {
	repo := &fakePromotionRepo{getErr: promotionRepo.ErrPromotionNotFound}
	svc, _ := newTestService(repo)

	_, err := svc.Validate(context.Background(), &models.ValidatePromotionRequest{Code: "MISSING"})

	assert.ErrorIs(t, err, ErrPromotionNotFound)
}

func TestValidate_OutsideWindow(t *testing.T) {
	promo := activePromotion()
	promo.EndDate = time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakePromotionRepo{promotion: promo}
	svc, _ := newTestService(repo)

	_, err := svc.Validate(context.Background(), &models.ValidatePromotionRequest{Code: "AUTUMN10"})

	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_InactivePromotion(t *testing.T) {
	promo := activePromotion()
	promo.IsActive = false
	repo := &fakePromotionRepo{promotion: promo}
	svc, _ := newTestService(repo)

	_, err := svc.Validate(context.Background(), &models.ValidatePromotionRequest{Code: "AUTUMN10"})

	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestCreate_ValidPromotion(t *testing.T) {
	repo := &fakePromotionRepo{}
	svc, _ := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreatePromotionRequest{
		Code:               "WINTER25",
		Description:        "Зимняя скидка",
		DiscountPercentage: "25",
		StartDate:          "2025-12-01",
		EndDate:            "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "25.00", resp.DiscountPercentage)
	assert.True(t, resp.IsActive)
}

func TestCreate_DiscountOutOfRange(t *testing.T) {
	svc, _ := newTestService(&fakePromotionRepo{})

	_, err := svc.Create(context.Background(), &models.CreatePromotionRequest{
		Code:               "TOOBIG",
		DiscountPercentage: "150",
		StartDate:          "2025-12-01",
		EndDate:            "2025-12-31",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc, _ := newTestService(&fakePromotionRepo{})

	_, err := svc.Create(context.Background(), &models.CreatePromotionRequest{
		Code:               "BACKWARDS",
		DiscountPercentage: "10",
		StartDate:          "2025-12-31",
		EndDate:            "2025-12-01",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_CodeConflict(t *testing.T) {
	repo := &fakePromotionRepo{createErr: promotionRepo.ErrCodeConflict}
	svc, _ := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreatePromotionRequest{
		Code:               "AUTUMN10",
		DiscountPercentage: "10",
		StartDate:          "2025-10-01",
		EndDate:            "2025-10-31",
	})

	assert.ErrorIs(t, err, ErrCodeConflict)
}

func TestUpdate_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := &fakePromotionRepo{promotion: activePromotion()}
	svc, _ := newTestService(repo)

	newPct := "15"
	resp, err := svc.Update(context.Background(), 42, &models.UpdatePromotionRequest{
		DiscountPercentage: &newPct,
	})

	require.NoError(t, err)
	assert.Equal(t, "15.00", resp.DiscountPercentage)
	assert.Equal(t, "AUTUMN10", resp.Code)
	assert.Equal(t, "2025-10-01", resp.StartDate)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakePromotionRepo{getErr: promotionRepo.ErrPromotionNotFound}
	svc, _ := newTestService(repo)

	newPct := "15"
	_, err := svc.Update(context.Background(), 42, &models.UpdatePromotionRequest{
		DiscountPercentage: &newPct,
	})

	assert.ErrorIs(t, err, ErrPromotionNotFound)
}
