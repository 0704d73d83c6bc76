package models

import (
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// Request модели

// CreateMembershipRequest запрос на оформление абонемента
type CreateMembershipRequest struct {
	UserID    int64  `json:"userId"`
	Tier      string `json:"tier"`
	AutoRenew bool   `json:"autoRenew"`
}

// UpdateMembershipRequest запрос на изменение настроек абонемента
type UpdateMembershipRequest struct {
	UserID    int64   `json:"userId"`
	Tier      *string `json:"tier,omitempty"`
	AutoRenew *bool   `json:"autoRenew,omitempty"`
}

// Response модели

// MembershipResponse ответ с данными абонемента
type MembershipResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	Tier           string `json:"tier"`
	Price          string `json:"price"` // 2 знака после запятой
	StartDate      string `json:"startDate"`
	ExpirationDate string `json:"expirationDate"`
	AutoRenew      bool   `json:"autoRenew"`
	Status         string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainMembership конвертирует domain модель в DTO
func FromDomainMembership(m *domain.Membership) *MembershipResponse {
	if m == nil {
		return nil
	}

	return &MembershipResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		Tier:           string(m.Tier),
		Price:          m.Price.StringFixed(2),
		StartDate:      m.StartDate.Format(domain.DateFormat),
		ExpirationDate: m.ExpirationDate.Format(domain.DateFormat),
		AutoRenew:      m.AutoRenew,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
