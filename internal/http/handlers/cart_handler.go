package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/store"
	"shopcore/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View(currentUserID(c)))
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	qty, ok := validate.Qty(req.Quantity)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be positive"})
	}

	cart, err := h.Cart.Add(currentUserID(c), req.ProductID, qty)
	switch err {
	case nil:
	case services.ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	case services.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "insufficient stock"})
	case store.ErrQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be positive"})
	default:
		return err
	}
	applog.Info(c, "cart.item.add", map[string]any{"product_id": req.ProductID, "qty": qty})
	return c.JSON(cart)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	cart, found := h.Cart.Remove(currentUserID(c), productID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no cart"})
	}
	return c.JSON(cart)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cart, found := h.Cart.Clear(currentUserID(c))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no cart"})
	}
	return c.JSON(cart)
}
