package handlers

import (
	"github.com/jmoiron/sqlx"

	"shopcore/internal/repos"
	"shopcore/internal/services"
	"shopcore/internal/store"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
}

func NewDeps(db *sqlx.DB, catalog *store.Catalog, carts *store.Carts, auth *services.AuthService) *Deps {
	catalogSvc := services.NewCatalogService(catalog)
	cartSvc := services.NewCartService(carts, catalog)
	orderSvc := services.NewOrderService(carts, repos.NewOrderRepo(db))

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: auth},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc},
	}
}
