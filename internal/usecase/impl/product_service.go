package impl

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/usecase"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new marketplace service instance
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{productRepo: productRepo}
}

func (srv *productService) ListProducts(ctx context.Context, page repository.Page) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx, page)
	if err != nil {
		return nil, translateStoreError(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, translateStoreError(err, "failed to get product")
	}

	return product, nil
}
