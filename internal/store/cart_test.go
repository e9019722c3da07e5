package store

import (
	"sync"
	"testing"

	"shopcore/internal/domain"
)

var widget = domain.Product{ID: 1, Name: "Widget", Price: 19.99, InventoryCount: 10}

func TestCarts_GetOrCreate(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	c1 := s.GetOrCreate(1)
	if c1.ID != 1 || c1.UserID != 1 || len(c1.Items) != 0 {
		t.Fatalf("first cart wrong: %+v", c1)
	}
	if again := s.GetOrCreate(1); again.ID != c1.ID {
		t.Fatalf("same user must keep the same cart, got %d and %d", c1.ID, again.ID)
	}
	if other := s.GetOrCreate(2); other.ID == c1.ID {
		t.Fatal("distinct users must get distinct cart ids")
	}
}

func TestCarts_AddItemMergesLines(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	if _, err := s.AddItem(1, widget, 2); err != nil {
		t.Fatal(err)
	}
	cart, err := s.AddItem(1, widget, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("want one merged line, got %d", len(cart.Items))
	}
	if it := cart.Items[0]; it.Quantity != 5 || it.UnitPrice != 19.99 || it.ProductName != "Widget" {
		t.Fatalf("merged line wrong: %+v", it)
	}
}

func TestCarts_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	for _, qty := range []int{0, -1} {
		if _, err := s.AddItem(1, widget, qty); err != ErrQuantity {
			t.Fatalf("qty %d: want ErrQuantity, got %v", qty, err)
		}
	}
}

func TestCarts_SnapshotIsPriceLocked(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	p := widget
	cart, err := s.AddItem(1, p, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Later product changes must not alter lines already in the cart.
	p.Price = 99.99
	p.Name = "Widget Pro"
	if it := cart.Items[0]; it.UnitPrice != 19.99 || it.ProductName != "Widget" {
		t.Fatalf("snapshot drifted: %+v", it)
	}
	if it := s.GetOrCreate(1).Items[0]; it.UnitPrice != 19.99 {
		t.Fatalf("stored line drifted: %+v", it)
	}
}

func TestCarts_ReturnedCartIsACopy(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	cart, err := s.AddItem(1, widget, 1)
	if err != nil {
		t.Fatal(err)
	}
	cart.Items[0].Quantity = 100
	if it := s.GetOrCreate(1).Items[0]; it.Quantity != 1 {
		t.Fatalf("mutation through returned cart leaked into store: %+v", it)
	}
}

func TestCarts_RemoveItem(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	if _, ok := s.RemoveItem(1, 1); ok {
		t.Fatal("remove for a user with no cart should report absence")
	}

	if _, err := s.AddItem(1, widget, 2); err != nil {
		t.Fatal(err)
	}

	// Removing an absent product is a no-op, not an error.
	cart, ok := s.RemoveItem(1, 999)
	if !ok || len(cart.Items) != 1 {
		t.Fatalf("no-op remove changed the cart: %+v, %v", cart, ok)
	}

	cart, ok = s.RemoveItem(1, widget.ID)
	if !ok || len(cart.Items) != 0 {
		t.Fatalf("remove failed: %+v, %v", cart, ok)
	}
}

func TestCarts_Clear(t *testing.T) {
	t.Parallel()

	s := NewCarts()
	if _, ok := s.Clear(1); ok {
		t.Fatal("clear for a user with no cart should report absence")
	}

	before, err := s.AddItem(1, widget, 2)
	if err != nil {
		t.Fatal(err)
	}
	after, ok := s.Clear(1)
	if !ok || len(after.Items) != 0 {
		t.Fatalf("clear failed: %+v, %v", after, ok)
	}
	if after.ID != before.ID || after.UserID != before.UserID {
		t.Fatalf("clear must keep the cart entity: before=%+v after=%+v", before, after)
	}
}

func TestCarts_ConcurrentFirstAccessCreatesOnce(t *testing.T) {
	t.Parallel()

	const n = 32
	s := NewCarts()
	ids := make([]int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = s.GetOrCreate(7).ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("concurrent first access created more than one cart: %v", ids)
		}
	}
}

func TestCarts_ConcurrentAddsAreNotLost(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		adds    = 25
	)
	s := NewCarts()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < adds; i++ {
				if _, err := s.AddItem(1, widget, 1); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	cart := s.GetOrCreate(1)
	if len(cart.Items) != 1 {
		t.Fatalf("want one line, got %d", len(cart.Items))
	}
	if got := cart.Items[0].Quantity; got != workers*adds {
		t.Fatalf("lost updates: want quantity %d, got %d", workers*adds, got)
	}
}
