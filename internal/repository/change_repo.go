package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type ChangeRepository interface {
	Create(ctx context.Context, change *model.InventoryChange) error
	FindAll(ctx context.Context) ([]model.InventoryChange, error)
}

type changeRepo struct {
	db *gorm.DB
}

func NewChangeRepo(db *gorm.DB) ChangeRepository {
	return &changeRepo{db}
}

func (r *changeRepo) Create(ctx context.Context, change *model.InventoryChange) error {
	return r.db.WithContext(ctx).Create(change).Error
}

// FindAll returns the log newest-first.
func (r *changeRepo) FindAll(ctx context.Context) ([]model.InventoryChange, error) {
	changes := []model.InventoryChange{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&changes).Error
	return changes, err
}
