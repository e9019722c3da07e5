package domain

type Product struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	InventoryCount int     `json:"inventory_count"`
}

// NewProduct is the creation shape; the catalog assigns the id.
type NewProduct struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	InventoryCount int     `json:"inventory_count"`
}

// ProductFilter criteria combine with AND. A nil field matches everything,
// price bounds are inclusive, InStock means inventory_count > 0.
type ProductFilter struct {
	NameContains *string
	MinPrice     *float64
	MaxPrice     *float64
	InStock      *bool
}
