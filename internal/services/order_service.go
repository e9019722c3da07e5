package services

import (
	"errors"

	"github.com/google/uuid"

	"shopcore/internal/repos"
	"shopcore/internal/store"
)

var ErrCartEmpty = errors.New("cart empty")

type OrderService struct {
	Carts  *store.Carts
	Orders *repos.OrderRepo
}

func NewOrderService(carts *store.Carts, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Orders: orders}
}

// Place snapshots the user's cart into an order with a server-computed
// total, then clears the cart. Inventory is neither reserved nor
// decremented.
func (s *OrderService) Place(userID int64) (string, float64, error) {
	cart := s.Carts.GetOrCreate(userID)
	if len(cart.Items) == 0 {
		return "", 0, ErrCartEmpty
	}

	total := cart.Total()
	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, userID, total); err != nil {
		return "", 0, err
	}
	for _, it := range cart.Items {
		if err := s.Orders.InsertItem(orderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice); err != nil {
			return "", 0, err
		}
	}
	s.Carts.Clear(userID)
	return orderID, total, nil
}

func (s *OrderService) History(userID int64) ([]repos.OrderSummary, error) {
	return s.Orders.ListByUser(userID)
}
