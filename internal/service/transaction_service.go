package service

import (
	"context"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_total",
		Help: "Number of sale transactions committed.",
	})
	salesAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_amount_total",
		Help: "Sum of committed sale totals, in the smallest currency unit.",
	})
)

type TransactionService interface {
	List(ctx context.Context) ([]model.TransactionResponse, error)
	Save(ctx context.Context, transaction *model.Transaction) error
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	wsHub           *ws.Hub
}

func NewTransactionService(transactionRepo repository.TransactionRepository, hub *ws.Hub) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		wsHub:           hub,
	}
}

func (s *transactionService) List(ctx context.Context) ([]model.TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return transactions, nil
}

// Save records a sale: header, line items, and stock decrements commit or
// roll back together.
func (s *transactionService) Save(ctx context.Context, transaction *model.Transaction) error {
	if errs := validator.ValidateStruct(transaction); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if transaction.Date == "" {
		transaction.Date = time.Now().Format("2006-01-02 15:04:05")
	}
	if transaction.PaymentMethod == "" {
		transaction.PaymentMethod = "Cash"
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return classify(err)
	}

	salesTotal.Inc()
	salesAmountTotal.Add(float64(transaction.Total))
	s.wsHub.Publish("transaction_saved", map[string]interface{}{
		"id":    transaction.ID,
		"total": transaction.Total,
		"items": len(transaction.Items),
	})
	return nil
}
