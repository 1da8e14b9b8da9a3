package entity

import (
	"time"

	"github.com/socialai-lab/backend/pkg/enum"
)

type TransactionStatus string

var (
	TransactionCompleted = enum.New(TransactionStatus("completed"))
)

// Transaction is appended on every successful payment and never mutated or
// removed individually afterwards.
type Transaction struct {
	ID      string            `json:"id"`
	Amount  float64           `json:"amount"`
	Plan    string            `json:"plan"`
	Method  string            `json:"method"`
	Status  TransactionStatus `json:"status"`
	Date    time.Time         `json:"date"`
	Last4   string            `json:"last4"`
	Receipt string            `json:"receipt"`
}
