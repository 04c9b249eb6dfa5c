package service

import (
	"context"
	"fmt"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/model"
	"labadmin/internal/repository"
)

// ProductService handles product operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (uint64, error)
	// DeleteProduct returns errors.ErrNotFound when no product had that ID.
	DeleteProduct(ctx context.Context, id uint64) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) CreateProduct(ctx context.Context, product *model.Product) (uint64, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return product.ID, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
