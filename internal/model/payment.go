package model

import "github.com/socialai-lab/backend/internal/entity"

type ProcessPaymentRequest struct {
	Amount     float64 `json:"amount"`
	Plan       string  `json:"plan"`
	Method     string  `json:"method"`
	CardNumber string  `json:"card_number,omitempty"`
}

type ProcessPaymentResponse struct {
	Success       bool               `json:"success"`
	TransactionID string             `json:"transaction_id"`
	Transaction   entity.Transaction `json:"transaction"`
}

type GetTransactionsRequest struct{}

type GetTransactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
}
