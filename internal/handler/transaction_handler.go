package handler

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GetTransactions handles GET /transactions
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	transactions, err := h.service.List(ctx)
	if err != nil {
		return respondError(c, err, "Failed to load transactions")
	}
	return c.JSON(transactions)
}

type transactionItemRequest struct {
	ID       string         `json:"id"`
	Qty      model.FlexInt  `json:"qty"`
	Price    model.FlexInt  `json:"price"`
	Subtotal *model.FlexInt `json:"subtotal"`
}

type transactionSaveRequest struct {
	ID            *string                  `json:"id"`
	Date          string                   `json:"date"`
	Total         *model.FlexInt           `json:"total"`
	PaymentMethod string                   `json:"paymentMethod"`
	Change        model.FlexInt            `json:"change"`
	Items         []transactionItemRequest `json:"items"`
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req transactionSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}
	if req.ID == nil || *req.ID == "" || len(req.Items) == 0 || req.Total == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transaction ID, items, and total required"})
	}

	transaction := model.Transaction{
		ID:            *req.ID,
		Date:          req.Date,
		Total:         req.Total.Int64(),
		PaymentMethod: req.PaymentMethod,
		ChangeAmount:  req.Change.Int64(),
		Items:         make([]model.TransactionItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		subtotal := item.Price.Int64() * item.Qty.Int64()
		if item.Subtotal != nil {
			subtotal = item.Subtotal.Int64()
		}
		transaction.Items = append(transaction.Items, model.TransactionItem{
			ProductID: item.ID,
			Quantity:  item.Qty.Int(),
			Price:     item.Price.Int64(),
			Subtotal:  subtotal,
		})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Save(ctx, &transaction); err != nil {
		if errors.Is(err, service.ErrDuplicateID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Transaction ID already exists"})
		}
		return respondError(c, err, "Failed to save transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Transaction saved"})
}
