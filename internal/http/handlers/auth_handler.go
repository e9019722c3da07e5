package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid username"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	if !validate.Password(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password too weak"})
	}

	u, token, err := h.Auth.Register(username, email, req.Password)
	if err == services.ErrEmailTaken {
		applog.Security(c, "auth.register.conflict", map[string]any{"email": email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	u, token, err := h.Auth.Login(email, req.Password)
	if err == services.ErrBadCreds {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"token": token, "user": u})
}
