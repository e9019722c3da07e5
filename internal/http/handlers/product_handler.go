package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopcore/internal/domain"
	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List applies any combination of name, min_price, max_price and in_stock
// query filters; with none it returns the full catalog in creation order.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f domain.ProductFilter
	if q := strings.TrimSpace(c.Query("name")); q != "" {
		f.NameContains = &q
	}
	if s := c.Query("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid min_price"})
		}
		f.MinPrice = &v
	}
	if s := c.Query("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid max_price"})
		}
		f.MaxPrice = &v
	}
	if s := c.Query("in_stock"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid in_stock"})
		}
		f.InStock = &v
	}
	return c.JSON(fiber.Map{"products": h.Catalog.List(f)})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var np domain.NewProduct
	if err := c.BodyParser(&np); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(np.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name"})
	}
	p, err := h.Catalog.Create(np)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "catalog.product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

type inventoryRequest struct {
	InventoryCount int `json:"inventory_count"`
}

func (h *ProductHandler) SetInventory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req inventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, found, err := h.Catalog.SetInventory(id, req.InventoryCount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	applog.Audit(c, "catalog.inventory.update", map[string]any{"product_id": id, "count": req.InventoryCount})
	return c.JSON(p)
}
