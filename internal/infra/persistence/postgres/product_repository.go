package postgres

import (
	"context"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListProducts returns in-stock products only.
func (s *Store) ListProducts(ctx context.Context, page repository.Page) ([]*entity.Product, error) {
	var rows []model.ProductModel
	err := s.conn(ctx).
		Where("in_stock = ?", true).
		Scopes(newestFirst, paged(page)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, nil
}

func (s *Store) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := s.conn(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
		Tag:         data.Tag,
		Tagline:     data.Tagline,
		InStock:     data.InStock,
		CreatedAt:   data.CreatedAt,
	}
}
