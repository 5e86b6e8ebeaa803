package handler

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// inventoryWriteRequest covers both write shapes on POST /inventory and the
// full-row PUT /inventory/update. Pointers distinguish absent from zero;
// imagePath is accepted under either key.
type inventoryWriteRequest struct {
	ID           *string        `json:"id"`
	Name         *string        `json:"name"`
	Price        *model.FlexInt `json:"price"`
	Stock        *model.FlexInt `json:"stock"`
	Category     *string        `json:"category"`
	ImagePath    *string        `json:"imagePath"`
	ImagePathAlt *string        `json:"image_path"`
}

func (r *inventoryWriteRequest) imagePath() *string {
	if r.ImagePath != nil {
		return r.ImagePath
	}
	return r.ImagePathAlt
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := h.service.ListProducts(ctx)
	if err != nil {
		return respondError(c, err, "Failed to load inventory")
	}
	return c.JSON(products)
}

// PostInventory handles POST /inventory. The legacy storefront uses this
// endpoint for two operations, so the payload shape is dispatched
// explicitly: all add fields present means add, an id alone means delete,
// and anything in between is rejected rather than guessed at.
func (h *InventoryHandler) PostInventory(c *fiber.Ctx) error {
	var req inventoryWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	hasAddFields := req.ID != nil && req.Name != nil && req.Price != nil && req.Stock != nil && req.Category != nil
	deleteShape := req.ID != nil && req.Name == nil && req.Price == nil && req.Stock == nil && req.Category == nil

	switch {
	case hasAddFields:
		return h.addProduct(c, &req)
	case deleteShape:
		return h.deleteProduct(c, *req.ID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id, name, price, stock, category required"})
	}
}

func (h *InventoryHandler) addProduct(c *fiber.Ctx, req *inventoryWriteRequest) error {
	product := model.Product{
		ID:        *req.ID,
		Name:      *req.Name,
		Price:     req.Price.Int64(),
		Stock:     req.Stock.Int(),
		Category:  *req.Category,
		ImagePath: req.imagePath(),
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.AddProduct(ctx, &product); err != nil {
		if errors.Is(err, service.ErrDuplicateID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Product ID already exists"})
		}
		return respondError(c, err, "Failed to add product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": product.ID})
}

func (h *InventoryHandler) deleteProduct(c *fiber.Ctx, id string) error {
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product id required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return respondError(c, err, "Failed to delete product")
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteInventory handles DELETE|POST /inventory/delete. The id comes from
// the JSON body when present, from ?id= otherwise.
func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	// Body is optional here; DELETE callers send the id as a query param.
	_ = c.BodyParser(&req)
	id := req.ID
	if id == "" {
		id = c.Query("id")
	}
	return h.deleteProduct(c, id)
}

// UpdateStock handles PUT /inventory/stock. The value is an absolute
// overwrite, not a delta.
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var req struct {
		ID    *string        `json:"id"`
		Stock *model.FlexInt `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}
	if req.ID == nil || *req.ID == "" || req.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID and stock required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.SetStock(ctx, *req.ID, req.Stock.Int()); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return respondError(c, err, "Failed to update stock")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Stock updated"})
}

// UpdateInventory handles PUT /inventory/update. Missing fields fall back to
// empty/zero; a missing imagePath keeps the stored value (coalesce-on-null).
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	var req inventoryWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}
	if req.ID == nil || *req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID required"})
	}

	upd := repository.ProductUpdate{ImagePath: req.imagePath()}
	if req.Name != nil {
		upd.Name = *req.Name
	}
	if req.Price != nil {
		upd.Price = req.Price.Int64()
	}
	if req.Stock != nil {
		upd.Stock = req.Stock.Int()
	}
	if req.Category != nil {
		upd.Category = *req.Category
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.UpdateProduct(ctx, *req.ID, upd); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return respondError(c, err, "Failed to update product")
	}

	return c.JSON(fiber.Map{"success": true})
}
