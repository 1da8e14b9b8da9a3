package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/idutil"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

type PaymentDomain interface {
	ProcessPayment(context.Context, *model.ProcessPaymentRequest) (*model.ProcessPaymentResponse, error)
	GetTransactions(context.Context, *model.GetTransactionsRequest) (*model.GetTransactionsResponse, error)
}

type paymentDomain struct {
	transactionRepo repository.TransactionRepository
	simulator       *simulate.Simulator
}

func NewPaymentDomain(
	transactionRepo repository.TransactionRepository,
	simulator *simulate.Simulator,
) *paymentDomain {
	return &paymentDomain{
		transactionRepo: transactionRepo,
		simulator:       simulator,
	}
}

// ProcessPayment is the only operation whose simulated failure reaches
// callers. A declined payment writes nothing; subscription state must only
// change after this returns success.
func (d *paymentDomain) ProcessPayment(
	ctx context.Context, req *model.ProcessPaymentRequest,
) (*model.ProcessPaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive amount")
	}

	if req.Plan == "" || req.Method == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a plan and a payment method")
	}

	declined := errorx.New(errorx.PaymentDeclined, "Payment declined. Please try another card.")

	var transaction *entity.Transaction
	err := d.simulator.DoFallible(ctx, declined, func() error {
		transaction = &entity.Transaction{
			ID:      idutil.New("txn"),
			Amount:  req.Amount,
			Plan:    req.Plan,
			Method:  req.Method,
			Status:  entity.TransactionCompleted,
			Date:    time.Now(),
			Last4:   maskCardNumber(req.CardNumber),
			Receipt: "",
		}
		transaction.Receipt = fmt.Sprintf("receipt_%s.pdf", transaction.ID)

		return d.transactionRepo.Prepend(ctx, transaction)
	})
	if err != nil {
		if errxErr, ok := err.(errorx.Error); ok {
			return nil, errxErr
		}

		xcontext.Logger(ctx).Errorf("Cannot process payment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ProcessPaymentResponse{
		Success:       true,
		TransactionID: transaction.ID,
		Transaction:   *transaction,
	}, nil
}

func (d *paymentDomain) GetTransactions(
	ctx context.Context, req *model.GetTransactionsRequest,
) (*model.GetTransactionsResponse, error) {
	return &model.GetTransactionsResponse{
		Transactions: d.transactionRepo.GetList(ctx),
	}, nil
}

func maskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}

	return cardNumber[len(cardNumber)-4:]
}
