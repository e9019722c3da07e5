package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderSummary struct {
	ID        string  `db:"id" json:"id"`
	UserID    int64   `db:"user_id" json:"user_id"`
	Total     float64 `db:"total" json:"total"`
	Status    string  `db:"status" json:"status"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type OrderItemRow struct {
	ProductID int     `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Qty       int     `db:"qty" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// Create inserts a new order header.
func (r *OrderRepo) Create(orderID string, userID int64, total float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, user_id, total, status, created_at)
	  VALUES(?, ?, ?, 'PLACED', CURRENT_TIMESTAMP)
	`, orderID, userID, total)
	return err
}

// InsertItem inserts a single price-locked line item.
func (r *OrderRepo) InsertItem(orderID string, productID int, name string, qty int, unitPrice float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, name, qty, unit_price)
	  VALUES(?, ?, ?, ?, ?)
	`, orderID, productID, name, qty, unitPrice)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderSummary, []OrderItemRow, error) {
	var o OrderSummary
	if err := r.db.Get(&o, `
		SELECT id, user_id, total, status, created_at FROM orders WHERE id = ?
	`, orderID); err != nil {
		return OrderSummary{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT product_id, name, qty, unit_price, (qty * unit_price) AS subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID); err != nil {
		return OrderSummary{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListByUser(userID int64) ([]OrderSummary, error) {
	out := []OrderSummary{}
	err := r.db.Select(&out, `
		SELECT id, user_id, total, status, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC, id
	`, userID)
	return out, err
}
