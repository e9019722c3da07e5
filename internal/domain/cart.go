package domain

// CartItem carries a price-locked snapshot of the product taken at the
// moment it was added. Later catalog changes never touch existing lines.
type CartItem struct {
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
}

type Cart struct {
	ID     int        `json:"id"`
	UserID int64      `json:"user_id"`
	Items  []CartItem `json:"items"`
}

func (c Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
