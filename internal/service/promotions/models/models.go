package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// Request модели

// ValidatePromotionRequest запрос на проверку промокода
type ValidatePromotionRequest struct {
	Code string `json:"code"`
}

// CreatePromotionRequest запрос на создание промоакции
type CreatePromotionRequest struct {
	Code               string `json:"code"`
	Description        string `json:"description"`
	DiscountPercentage string `json:"discountPercentage"` // "0".."100"
	StartDate          string `json:"startDate"`          // "2025-10-01"
	EndDate            string `json:"endDate"`            // "2025-10-31"
	IsActive           *bool  `json:"isActive,omitempty"`
}

// ToDomainPromotion конвертирует request в domain модель
func (r *CreatePromotionRequest) ToDomainPromotion(pct decimal.Decimal, start, end time.Time) *domain.Promotion {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Promotion{
		Code:               r.Code,
		Description:        r.Description,
		DiscountPercentage: pct,
		StartDate:          start,
		EndDate:            end,
		IsActive:           isActive,
	}
}

// UpdatePromotionRequest запрос на частичное обновление промоакции
type UpdatePromotionRequest struct {
	Code               *string `json:"code,omitempty"`
	Description        *string `json:"description,omitempty"`
	DiscountPercentage *string `json:"discountPercentage,omitempty"`
	StartDate          *string `json:"startDate,omitempty"`
	EndDate            *string `json:"endDate,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
}

// Response модели

// ValidatePromotionResponse ответ на проверку промокода
// Токен предъявляется при расчете и подтверждении оплаты
type ValidatePromotionResponse struct {
	Valid              bool   `json:"valid"`
	PromotionID        int64  `json:"promotionId"`
	Code               string `json:"code"`
	Description        string `json:"description"`
	DiscountPercentage string `json:"discountPercentage"`
	Token              string `json:"token"`
}

// PromotionResponse ответ с данными промоакции
type PromotionResponse struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	Description        string `json:"description"`
	DiscountPercentage string `json:"discountPercentage"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	IsActive           bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PromotionListResponse ответ со списком промоакций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// Методы конвертации

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}

	return &PromotionResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage.StringFixed(2),
		StartDate:          p.StartDate.Format(domain.DateFormat),
		EndDate:            p.EndDate.Format(domain.DateFormat),
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	if promotions == nil {
		return &PromotionListResponse{
			Promotions: []PromotionResponse{},
		}
	}

	resp := &PromotionListResponse{
		Promotions: make([]PromotionResponse, len(promotions)),
	}

	for i, promo := range promotions {
		if promoResp := FromDomainPromotion(promo); promoResp != nil {
			resp.Promotions[i] = *promoResp
		}
	}

	return resp
}
