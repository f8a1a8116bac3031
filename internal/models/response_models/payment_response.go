package response_models

import "encoding/json"

// PaymentState classifies the outcome of a reconciliation attempt.
type PaymentState string

const (
	PaymentStateCompleted PaymentState = "COMPLETED"
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateFailed    PaymentState = "FAILED"
)

type InitiatePaymentResponse struct {
	TransactionID string          `json:"transaction_id"`
	Amount        int64           `json:"amount"`
	PaymentURL    string          `json:"payment_url,omitempty"`
	Gateway       json.RawMessage `json:"gateway"` // gateway response, verbatim
}

type PaymentStatusResponse struct {
	TransactionID string          `json:"transaction_id"`
	State         PaymentState    `json:"state"`
	PaymentDate   int64           `json:"payment_date,omitempty"` // unix seconds
	ValidTill     int64           `json:"valid_till,omitempty"`   // unix seconds
	Gateway       json.RawMessage `json:"gateway,omitempty"`
}

func (r *PaymentStatusResponse) Completed() bool {
	return r.State == PaymentStateCompleted
}
