package repository

import (
	"context"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type TransactionRepository interface {
	Prepend(ctx context.Context, tx *entity.Transaction) error
	GetList(ctx context.Context) []entity.Transaction
}

type transactionRepository struct{}

func NewTransactionRepository() *transactionRepository {
	return &transactionRepository{}
}

// Prepend puts tx first; the history is append-only and unbounded.
func (r *transactionRepository) Prepend(ctx context.Context, tx *entity.Transaction) error {
	return updateJSON(ctx, common.KeyTransactions, []entity.Transaction{},
		func(history []entity.Transaction) ([]entity.Transaction, error) {
			return append([]entity.Transaction{*tx}, history...), nil
		})
}

func (r *transactionRepository) GetList(ctx context.Context) []entity.Transaction {
	return getJSON(ctx, common.KeyTransactions, []entity.Transaction{})
}
