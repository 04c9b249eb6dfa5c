package repository

import (
	"context"

	"gorm.io/gorm"

	"labadmin/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product and fills in its generated ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// List returns every product.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes a product by ID and reports how many rows were removed.
func (r *productRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_produto = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}
