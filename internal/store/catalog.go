package store

import (
	"strings"
	"sync"

	"shopcore/internal/domain"
)

// Catalog is the authoritative in-memory product set. All methods are safe
// for concurrent use. Returned products and slices are copies, never
// aliases of internal state, so callers cannot observe or cause a torn
// write. Ids are assigned sequentially from 1 and never reused.
type Catalog struct {
	mu       sync.RWMutex
	nextID   int
	index    map[int]int // product id -> position in products
	products []domain.Product
}

func NewCatalog() *Catalog {
	return &Catalog{nextID: 1, index: make(map[int]int)}
}

// Create assigns the next id and stores the product. It does not validate
// price or inventory; business rules live in the catalog service.
func (c *Catalog) Create(np domain.NewProduct) domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := domain.Product{
		ID:             c.nextID,
		Name:           np.Name,
		Description:    np.Description,
		Price:          np.Price,
		InventoryCount: np.InventoryCount,
	}
	c.nextID++
	c.index[p.ID] = len(c.products)
	c.products = append(c.products, p)
	return p
}

// All returns a snapshot of every product in creation order.
func (c *Catalog) All() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID reports absence with ok=false; an unknown id is a normal outcome,
// not an error.
func (c *Catalog) ByID(id int) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// UpdateInventory overwrites the inventory count and returns the updated
// product, or ok=false for an unknown id. The count is stored as given;
// callers enforcing the non-negative invariant must check first.
func (c *Catalog) UpdateInventory(id, count int) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, false
	}
	c.products[i].InventoryCount = count
	return c.products[i], true
}

// Filter returns the products matching every provided criterion, in
// creation order. With no criteria it returns the full catalog.
func (c *Catalog) Filter(f domain.ProductFilter) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.NameContains != nil &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.NameContains)) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock != nil && *f.InStock != (p.InventoryCount > 0) {
			continue
		}
		out = append(out, p)
	}
	return out
}
