package main

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopcore/internal/auth"
	"shopcore/internal/clock"
	"shopcore/internal/config"
	"shopcore/internal/domain"
	"shopcore/internal/http/handlers"
	applog "shopcore/internal/log"
	"shopcore/internal/repos"
	"shopcore/internal/services"
	"shopcore/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	catalog := store.NewCatalog()
	carts := store.NewCarts()
	seedCatalog(catalog)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), clock.System())
	authSvc := services.NewAuthService(repos.NewUserRepo(db), tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			// Avoid leaking internals on unexpected failures.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, catalog, carts, authSvc)
	requireUser := handlers.RequireUser(authSvc)

	api := app.Group("/api/v1")

	// Auth (login throttled)
	api.Post("/auth/register", deps.AuthHandler.Register)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)

	// Catalog
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products", requireUser, deps.ProductHandler.Create)
	api.Put("/products/:id/inventory", requireUser, deps.ProductHandler.SetInventory)

	// Cart
	api.Get("/cart", requireUser, deps.CartHandler.View)
	api.Post("/cart/items", requireUser, deps.CartHandler.AddItem)
	api.Delete("/cart/items/:productId", requireUser, deps.CartHandler.RemoveItem)
	api.Delete("/cart", requireUser, deps.CartHandler.Clear)

	// Checkout
	api.Post("/checkout", requireUser, deps.OrderHandler.Checkout)
	api.Get("/orders", requireUser, deps.OrderHandler.History)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

// seedCatalog inserts demo products; the catalog starts empty on every boot.
func seedCatalog(catalog *store.Catalog) {
	log.Println("[seed] inserting demo products")
	for _, np := range []domain.NewProduct{
		{Name: "Game Boy Color", Description: "Handheld console", Price: 129.99, InventoryCount: 8},
		{Name: "NES Console", Description: "Classic 8-bit console", Price: 199.00, InventoryCount: 5},
		{Name: "Philco 1939", Description: "Vintage vacuum tube radio", Price: 349.50, InventoryCount: 2},
		{Name: "Zenith Royal 500", Description: "Iconic vintage pocket radio", Price: 89.00, InventoryCount: 0},
	} {
		catalog.Create(np)
	}
}
