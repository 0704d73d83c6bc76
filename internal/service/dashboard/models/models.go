package models

import (
	"time"

	"github.com/m04kA/SMC-LeisureService/internal/domain"
)

// DashboardResponse сводные показатели для админской панели
type DashboardResponse struct {
	TotalBookings     int64  `json:"totalBookings"`
	ActivePromotions  int64  `json:"activePromotions"`
	ActiveMemberships int64  `json:"activeMemberships"`
	TotalRevenue      string `json:"totalRevenue"` // сумма всех платежей, 2 знака

	// Количество пользователей недоступно, если UserService не отвечает
	TotalUsers *int64 `json:"totalUsers,omitempty"`

	LatestBookings []DashboardBooking `json:"latestBookings"`
	LatestPayments []DashboardPayment `json:"latestPayments"`
}

// DashboardBooking краткие данные бронирования для дашборда
type DashboardBooking struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	ActivityName string `json:"activityName"`
	BookingDate  string `json:"bookingDate"`
	StartTime    string `json:"startTime"`
	Status       string `json:"status"`
}

// DashboardPayment краткие данные платежа для дашборда
type DashboardPayment struct {
	ID        int64     `json:"id"`
	BookingID *int64    `json:"bookingId,omitempty"`
	Amount    string    `json:"amount"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBookings конвертирует бронирования в краткие DTO
func FromDomainBookings(bookings []*domain.Booking) []DashboardBooking {
	result := make([]DashboardBooking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, DashboardBooking{
			ID:           b.ID,
			UserID:       b.UserID,
			ActivityName: b.ActivityName,
			BookingDate:  b.BookingDate.Format(domain.DateFormat),
			StartTime:    b.StartTime.String(),
			Status:       string(b.Status),
		})
	}
	return result
}

// FromDomainPayments конвертирует платежи в краткие DTO
func FromDomainPayments(payments []*domain.Payment) []DashboardPayment {
	result := make([]DashboardPayment, 0, len(payments))
	for _, p := range payments {
		result = append(result, DashboardPayment{
			ID:        p.ID,
			BookingID: p.BookingID,
			Amount:    p.Amount.StringFixed(2),
			Reference: p.Reference,
			CreatedAt: p.CreatedAt,
		})
	}
	return result
}
