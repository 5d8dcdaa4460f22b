package dto

type PaymentRequest struct {
	Amount float64 `json:"amount"`
}

type PaymentResponse struct {
	Status string `json:"status"`
	Tx     string `json:"tx,omitempty"`
	Reason string `json:"reason"`
}
