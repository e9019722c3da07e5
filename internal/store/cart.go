package store

import (
	"errors"
	"sync"

	"shopcore/internal/domain"
)

// ErrQuantity is returned when an add requests a non-positive quantity.
var ErrQuantity = errors.New("quantity must be positive")

// Carts owns one cart per user id, created lazily on first access. The
// store-level lock only guards the user->cart map; each cart carries its
// own mutex, so operations on two different users' carts never serialize
// against each other. Mutations of one user's cart are serialized, which
// rules out lost updates from concurrent adds.
//
// Returned carts are deep copies: a caller holding a returned Cart cannot
// observe later mutations, and cannot reach into store state.
type Carts struct {
	mu     sync.RWMutex
	nextID int
	byUser map[int64]*cartEntry
}

type cartEntry struct {
	mu   sync.Mutex
	cart domain.Cart
}

func NewCarts() *Carts {
	return &Carts{nextID: 1, byUser: make(map[int64]*cartEntry)}
}

// entry returns the user's cart entry, creating it exactly once. The
// double-checked lookup keeps first access race-free without holding the
// write lock on the common path.
func (s *Carts) entry(userID int64) *cartEntry {
	s.mu.RLock()
	e := s.byUser[userID]
	s.mu.RUnlock()
	if e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e = s.byUser[userID]; e != nil {
		return e
	}
	e = &cartEntry{cart: domain.Cart{ID: s.nextID, UserID: userID, Items: []domain.CartItem{}}}
	s.nextID++
	s.byUser[userID] = e
	return e
}

// lookup returns nil if the user has never had a cart.
func (s *Carts) lookup(userID int64) *cartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byUser[userID]
}

func (e *cartEntry) snapshot() domain.Cart {
	out := e.cart
	out.Items = make([]domain.CartItem, len(e.cart.Items))
	copy(out.Items, e.cart.Items)
	return out
}

// GetOrCreate returns the user's cart, creating an empty one on first use.
func (s *Carts) GetOrCreate(userID int64) domain.Cart {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// AddItem increments the quantity of an existing line for product.ID or
// appends a new line snapshotting the product's name and price at this
// instant. Inventory is not checked here; that is the caller's business
// rule against the catalog.
func (s *Carts) AddItem(userID int64, product domain.Product, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, ErrQuantity
	}
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.cart.Items {
		if e.cart.Items[i].ProductID == product.ID {
			e.cart.Items[i].Quantity += quantity
			return e.snapshot(), nil
		}
	}
	e.cart.Items = append(e.cart.Items, domain.CartItem{
		ProductID:   product.ID,
		Quantity:    quantity,
		ProductName: product.Name,
		UnitPrice:   product.Price,
	})
	return e.snapshot(), nil
}

// RemoveItem drops any line for productID. Removing a product that is not
// in the cart is a no-op. ok=false means the user has no cart at all.
func (s *Carts) RemoveItem(userID int64, productID int) (domain.Cart, bool) {
	e := s.lookup(userID)
	if e == nil {
		return domain.Cart{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.cart.Items[:0]
	for _, it := range e.cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	e.cart.Items = kept
	return e.snapshot(), true
}

// Clear empties the cart's items; the cart itself persists with its id.
func (s *Carts) Clear(userID int64) (domain.Cart, bool) {
	e := s.lookup(userID)
	if e == nil {
		return domain.Cart{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.Items = e.cart.Items[:0]
	return e.snapshot(), true
}
