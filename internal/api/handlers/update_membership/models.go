package update_membership

import (
	"github.com/m04kA/SMC-LeisureService/internal/service/memberships/models"
)

// UpdateMembershipRequest HTTP запрос на изменение настроек абонемента
type UpdateMembershipRequest struct {
	Tier      *string `json:"tier,omitempty"`
	AutoRenew *bool   `json:"autoRenew,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateMembershipRequest) ToServiceRequest(userID int64) *models.UpdateMembershipRequest {
	return &models.UpdateMembershipRequest{
		UserID:    userID,
		Tier:      r.Tier,
		AutoRenew: r.AutoRenew,
	}
}
