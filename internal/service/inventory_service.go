package service

import (
	"context"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"
)

type InventoryService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error
	SetStock(ctx context.Context, id string, stock int) error
}

type inventoryService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewInventoryService(productRepo repository.ProductRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: productRepo,
		wsHub:       hub,
	}
}

func (s *inventoryService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return products, nil
}

func (s *inventoryService) AddProduct(ctx context.Context, product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return classify(err)
	}

	s.wsHub.Publish("product_created", product)
	return nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) error {
	affected, err := s.productRepo.Update(ctx, id, upd)
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.wsHub.Publish("product_updated", map[string]interface{}{
		"id":       id,
		"name":     upd.Name,
		"price":    upd.Price,
		"stock":    upd.Stock,
		"category": upd.Category,
	})
	return nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id string) error {
	affected, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.wsHub.Publish("product_deleted", map[string]interface{}{"id": id})
	return nil
}

// SetStock overwrites stock with an absolute value, not a delta.
func (s *inventoryService) SetStock(ctx context.Context, id string, stock int) error {
	affected, err := s.productRepo.UpdateStock(ctx, id, stock)
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.wsHub.Publish("stock_updated", map[string]interface{}{
		"id":    id,
		"stock": stock,
	})
	return nil
}
