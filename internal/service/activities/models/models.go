package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// Request модели

// CreateActivityRequest запрос на создание активности
type CreateActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // цена за час, "10.00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToDomainActivity конвертирует request в domain модель
func (r *CreateActivityRequest) ToDomainActivity(price decimal.Decimal) *domain.Activity {
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &domain.Activity{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		IsAvailable: isAvailable,
	}
}

// UpdateActivityRequest запрос на частичное обновление активности
type UpdateActivityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// ApplyToActivity применяет указанные поля к domain модели
func (r *UpdateActivityRequest) ApplyToActivity(a *domain.Activity, price *decimal.Decimal) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if price != nil {
		a.Price = *price
	}
	if r.IsAvailable != nil {
		a.IsAvailable = *r.IsAvailable
	}
}

// Response модели

// ActivityResponse ответ с данными активности
type ActivityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // цена за час, 2 знака после запятой
	IsAvailable bool   `json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityListResponse ответ со списком активностей
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// Методы конвертации

// FromDomainActivity конвертирует domain модель в DTO
func FromDomainActivity(a *domain.Activity) *ActivityResponse {
	if a == nil {
		return nil
	}

	return &ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price.StringFixed(2),
		IsAvailable: a.IsAvailable,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainActivityList конвертирует список domain моделей в DTO
func FromDomainActivityList(activities []*domain.Activity) *ActivityListResponse {
	if activities == nil {
		return &ActivityListResponse{
			Activities: []ActivityResponse{},
		}
	}

	resp := &ActivityListResponse{
		Activities: make([]ActivityResponse, len(activities)),
	}

	for i, activity := range activities {
		if activityResp := FromDomainActivity(activity); activityResp != nil {
			resp.Activities[i] = *activityResp
		}
	}

	return resp
}
