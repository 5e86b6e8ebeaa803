package handler

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ChangeLogHandler struct {
	service service.ChangeLogService
}

func NewChangeLogHandler(s service.ChangeLogService) *ChangeLogHandler {
	return &ChangeLogHandler{service: s}
}

// GetChanges handles GET /inventory_changes
func (h *ChangeLogHandler) GetChanges(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	changes, err := h.service.List(ctx)
	if err != nil {
		return respondError(c, err, "Failed to load inventory changes")
	}
	return c.JSON(changes)
}

type changeRequest struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Details  string `json:"details"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// CreateChange handles POST /inventory_changes
func (h *ChangeLogHandler) CreateChange(c *fiber.Ctx) error {
	var req changeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}
	if req.Action == "" || req.ItemID == "" || req.ItemName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "action, itemId, and itemName required"})
	}

	entry := model.InventoryChange{
		ID:       req.ID,
		Action:   req.Action,
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
		Details:  req.Details,
		DateStr:  req.Date,
		TimeStr:  req.Time,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.service.Append(ctx, &entry)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Change ID already exists"})
		}
		return respondError(c, err, "Failed to save inventory change")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}
