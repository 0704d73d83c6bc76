package confirm_payment

import (
	"time"

	confirmPayment "github.com/m04kA/SMC-LeisureService/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest HTTP запрос на подтверждение оплаты
type ConfirmPaymentRequest struct {
	PromoToken string `json:"promotionToken,omitempty"`
}

// PaymentResponse HTTP ответ с созданным платежом
type PaymentResponse struct {
	PaymentID   int64     `json:"paymentId"`
	BookingID   int64     `json:"bookingId"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	Reference   string    `json:"reference"`
	PromotionID *int64    `json:"promotionId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmPaymentRequest) ToUseCaseRequest(userID, bookingID int64) *confirmPayment.Request {
	return &confirmPayment.Request{
		UserID:     userID,
		BookingID:  bookingID,
		PromoToken: r.PromoToken,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *confirmPayment.Response) *PaymentResponse {
	if resp == nil {
		return nil
	}

	return &PaymentResponse{
		PaymentID:   resp.PaymentID,
		BookingID:   resp.BookingID,
		Status:      resp.Status,
		Amount:      resp.Amount,
		Reference:   resp.Reference,
		PromotionID: resp.PromotionID,
		CreatedAt:   resp.CreatedAt,
	}
}
