package services

import (
	"errors"

	"shopcore/internal/domain"
	"shopcore/internal/store"
)

var (
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeCount = errors.New("inventory count must not be negative")
)

type CatalogService struct {
	Products *store.Catalog
}

func NewCatalogService(products *store.Catalog) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) Create(np domain.NewProduct) (domain.Product, error) {
	if np.Price < 0 {
		return domain.Product{}, ErrNegativePrice
	}
	if np.InventoryCount < 0 {
		return domain.Product{}, ErrNegativeCount
	}
	return s.Products.Create(np), nil
}

func (s *CatalogService) List(f domain.ProductFilter) []domain.Product {
	return s.Products.Filter(f)
}

func (s *CatalogService) Get(id int) (domain.Product, bool) {
	return s.Products.ByID(id)
}

// SetInventory rejects negative counts here so the store stays a dumb
// arena: the non-negative invariant is a business rule, enforced before
// the store is touched. Decreases to any count >= 0 are allowed.
func (s *CatalogService) SetInventory(id, count int) (domain.Product, bool, error) {
	if count < 0 {
		return domain.Product{}, false, ErrNegativeCount
	}
	p, ok := s.Products.UpdateInventory(id, count)
	return p, ok, nil
}
