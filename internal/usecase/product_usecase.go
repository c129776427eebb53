package usecase

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
)

// ProductUsecase exposes the read-only marketplace catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context, page repository.Page) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
}
