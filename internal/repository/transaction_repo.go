package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Save(ctx context.Context, transaction *model.Transaction) error
	FindAll(ctx context.Context) ([]model.TransactionResponse, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Save writes the header, its line items, and the stock decrements as one
// atomic unit. Any failure rolls back every insert and every decrement.
// Stock is not floor-checked: oversold items go negative.
func (r *transactionRepo) Save(ctx context.Context, transaction *model.Transaction) error {
	header := *transaction
	header.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return err
		}

		for _, item := range transaction.Items {
			item.TransactionID = transaction.ID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

type transactionLineRow struct {
	TransactionID string
	ProductID     string
	Name          *string
	Quantity      int
	Price         int64
	Subtotal      int64
}

// FindAll returns sales newest-first, each with its line items joined
// against the current inventory names. A deleted product leaves a null name.
func (r *transactionRepo) FindAll(ctx context.Context) ([]model.TransactionResponse, error) {
	var headers []model.Transaction
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&headers).Error; err != nil {
		return nil, err
	}

	var rows []transactionLineRow
	err := r.db.WithContext(ctx).
		Table("transaction_items ti").
		Select("ti.transaction_id, ti.product_id, i.name, ti.quantity, ti.price, ti.subtotal").
		Joins("LEFT JOIN inventory i ON i.id = ti.product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	linesByTx := make(map[string][]model.TransactionLine, len(headers))
	for _, row := range rows {
		linesByTx[row.TransactionID] = append(linesByTx[row.TransactionID], model.TransactionLine{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Price:     row.Price,
			Subtotal:  row.Subtotal,
		})
	}

	result := make([]model.TransactionResponse, 0, len(headers))
	for _, h := range headers {
		items := linesByTx[h.ID]
		if items == nil {
			items = []model.TransactionLine{}
		}
		result = append(result, model.TransactionResponse{
			ID:            h.ID,
			Date:          h.Date,
			Total:         h.Total,
			PaymentMethod: h.PaymentMethod,
			Change:        h.ChangeAmount,
			Items:         items,
		})
	}
	return result, nil
}
