package request_models

type InitiatePaymentRequest struct {
	UserID string `json:"userId" binding:"required"`
	PlanID string `json:"planId" binding:"required"`
}

type PaymentStatusRequest struct {
	UserID                string `json:"userId" binding:"required"`
	PlanID                string `json:"planId" binding:"required"`
	MerchantTransactionID string `json:"merchantTransactionId" binding:"required"`
}
