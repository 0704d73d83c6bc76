package review_payment

import (
	reviewPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/review_payment"
)

// ReviewPaymentResponse HTTP ответ с расчетом суммы
type ReviewPaymentResponse struct {
	BookingID          int64   `json:"bookingId"`
	BaseAmount         string  `json:"baseAmount"`
	DiscountPercentage *string `json:"discountPercentage,omitempty"`
	TotalAmount        string  `json:"totalAmount"`
	PromotionID        *int64  `json:"promotionId,omitempty"`
}

// ToUseCaseRequest собирает модель use case из данных запроса
func ToUseCaseRequest(userID, bookingID int64, promoToken string) *reviewPayment.Request {
	return &reviewPayment.Request{
		UserID:     userID,
		BookingID:  bookingID,
		PromoToken: promoToken,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *reviewPayment.Response) *ReviewPaymentResponse {
	if resp == nil {
		return nil
	}

	return &ReviewPaymentResponse{
		BookingID:          resp.BookingID,
		BaseAmount:         resp.BaseAmount,
		DiscountPercentage: resp.DiscountPercentage,
		TotalAmount:        resp.TotalAmount,
		PromotionID:        resp.PromotionID,
	}
}
