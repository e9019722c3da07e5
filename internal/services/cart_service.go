package services

import (
	"errors"

	"shopcore/internal/domain"
	"shopcore/internal/store"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type CartService struct {
	Carts    *store.Carts
	Products *store.Catalog
}

func NewCartService(carts *store.Carts, products *store.Catalog) *CartService {
	return &CartService{Carts: carts, Products: products}
}

func (s *CartService) View(userID int64) domain.Cart {
	return s.Carts.GetOrCreate(userID)
}

// Add checks the requested quantity against catalog inventory before
// touching the cart; the cart store itself trusts its caller for business
// validation.
func (s *CartService) Add(userID int64, productID, qty int) (domain.Cart, error) {
	if qty <= 0 {
		return domain.Cart{}, store.ErrQuantity
	}
	p, ok := s.Products.ByID(productID)
	if !ok {
		return domain.Cart{}, ErrProductNotFound
	}
	if p.InventoryCount < qty {
		return domain.Cart{}, ErrInsufficientStock
	}
	return s.Carts.AddItem(userID, p, qty)
}

func (s *CartService) Remove(userID int64, productID int) (domain.Cart, bool) {
	return s.Carts.RemoveItem(userID, productID)
}

func (s *CartService) Clear(userID int64) (domain.Cart, bool) {
	return s.Carts.Clear(userID)
}
