package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	orderID, total, err := h.Order.Place(currentUserID(c))
	if err == services.ErrCartEmpty {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart empty"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "total": total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order_id": orderID, "total": total})
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	orders, err := h.Order.History(currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}
