package create_membership

import (
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

// CreateMembershipRequest HTTP запрос на оформление абонемента
type CreateMembershipRequest struct {
	Tier      string `json:"tier"`
	AutoRenew bool   `json:"autoRenew"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMembershipRequest) ToServiceRequest(userID int64) *models.CreateMembershipRequest {
	return &models.CreateMembershipRequest{
		UserID:    userID,
		Tier:      r.Tier,
		AutoRenew: r.AutoRenew,
	}
}
