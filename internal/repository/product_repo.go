package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

// ProductUpdate carries the full-row update. ImagePath nil means "keep the
// stored value" (coalesce-on-null), not "clear it".
type ProductUpdate struct {
	Name      string
	Price     int64
	Stock     int
	Category  string
	ImagePath *string
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (int64, error)
	UpdateStock(ctx context.Context, id string, stock int) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, id string, upd ProductUpdate) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       upd.Name,
			"price":      upd.Price,
			"stock":      upd.Stock,
			"category":   upd.Category,
			"image_path": gorm.Expr("COALESCE(?, image_path)", upd.ImagePath),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) UpdateStock(ctx context.Context, id string, stock int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", stock)
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
