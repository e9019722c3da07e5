package store

import (
	"sync"
	"testing"

	"shopcore/internal/domain"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func seedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	c.Create(domain.NewProduct{Name: "Widget", Price: 19.99, InventoryCount: 10})
	c.Create(domain.NewProduct{Name: "Gadget", Price: 5.00, InventoryCount: 0})
	c.Create(domain.NewProduct{Name: "Mega Widget", Price: 20.00, InventoryCount: 3})
	return c
}

func TestCatalog_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	p1 := c.Create(domain.NewProduct{Name: "a"})
	p2 := c.Create(domain.NewProduct{Name: "b"})
	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("want ids 1,2 got %d,%d", p1.ID, p2.ID)
	}
}

func TestCatalog_ByID(t *testing.T) {
	t.Parallel()

	c := seedCatalog(t)
	p, ok := c.ByID(1)
	if !ok || p.Name != "Widget" {
		t.Fatalf("ByID(1) = %+v, %v", p, ok)
	}
	if _, ok := c.ByID(99); ok {
		t.Fatal("ByID(99) should report absence")
	}
}

func TestCatalog_AllIsACopyInCreationOrder(t *testing.T) {
	t.Parallel()

	c := seedCatalog(t)
	all := c.All()
	if len(all) != 3 {
		t.Fatalf("want 3 products, got %d", len(all))
	}
	if all[0].Name != "Widget" || all[1].Name != "Gadget" || all[2].Name != "Mega Widget" {
		t.Fatalf("not in creation order: %+v", all)
	}

	// Mutating the snapshot must not reach the store.
	all[0].Name = "hacked"
	if p, _ := c.ByID(1); p.Name != "Widget" {
		t.Fatalf("snapshot mutation leaked into store: %+v", p)
	}
}

func TestCatalog_UpdateInventory(t *testing.T) {
	t.Parallel()

	c := seedCatalog(t)
	p, ok := c.UpdateInventory(2, 7)
	if !ok || p.InventoryCount != 7 {
		t.Fatalf("UpdateInventory(2,7) = %+v, %v", p, ok)
	}
	if p, _ := c.ByID(2); p.InventoryCount != 7 {
		t.Fatalf("update not visible on read: %+v", p)
	}
	if _, ok := c.UpdateInventory(99, 1); ok {
		t.Fatal("UpdateInventory on unknown id should report absence")
	}
}

func TestCatalog_Filter(t *testing.T) {
	t.Parallel()

	c := seedCatalog(t)

	if got := c.Filter(domain.ProductFilter{}); len(got) != 3 {
		t.Fatalf("empty filter should return everything, got %d", len(got))
	}

	got := c.Filter(domain.ProductFilter{MinPrice: f64Ptr(10), MaxPrice: f64Ptr(20)})
	if len(got) != 2 || got[0].Name != "Widget" || got[1].Name != "Mega Widget" {
		t.Fatalf("price range [10,20] wrong: %+v", got)
	}

	got = c.Filter(domain.ProductFilter{NameContains: strPtr("widget")})
	if len(got) != 2 {
		t.Fatalf("case-insensitive substring match wrong: %+v", got)
	}

	got = c.Filter(domain.ProductFilter{InStock: boolPtr(true)})
	if len(got) != 2 {
		t.Fatalf("in_stock=true wrong: %+v", got)
	}
	got = c.Filter(domain.ProductFilter{InStock: boolPtr(false)})
	if len(got) != 1 || got[0].Name != "Gadget" {
		t.Fatalf("in_stock=false wrong: %+v", got)
	}

	// Criteria combine with AND.
	got = c.Filter(domain.ProductFilter{NameContains: strPtr("widget"), InStock: boolPtr(true), MaxPrice: f64Ptr(19.99)})
	if len(got) != 1 || got[0].Name != "Widget" {
		t.Fatalf("combined filter wrong: %+v", got)
	}
}

func TestCatalog_ConcurrentCreatesYieldDistinctIDs(t *testing.T) {
	t.Parallel()

	const n = 64
	c := NewCatalog()
	ids := make([]int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = c.Create(domain.NewProduct{Name: "p"}).ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, id := range ids {
		if id < 1 || id > n {
			t.Fatalf("id %d out of range", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if got := len(c.All()); got != n {
		t.Fatalf("want %d products, got %d", n, got)
	}
}
