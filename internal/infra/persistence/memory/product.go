package memory

import (
	"context"
	"time"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
)

// ListProducts returns in-stock products only.
func (s *Store) ListProducts(_ context.Context, page repository.Page) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := collect(s.products,
		func(p *entity.Product) bool { return p.InStock },
		func(p *entity.Product) (time.Time, int64) { return p.CreatedAt, p.ID },
	)

	return paginate(products, page), nil
}

// FindProductByID returns a copy of the product or ErrProductNotFound.
func (s *Store) FindProductByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *product

	return &clone, nil
}

// addProduct inserts a catalog row. Products have no public create path.
func (s *Store) addProduct(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	product.ID = s.productSeq
	product.CreatedAt = s.now()
	s.products[product.ID] = &product
}
