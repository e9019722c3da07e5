package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
)

// RequireUser extracts the bearer token, resolves it to a user id and
// stores the id in Locals. Every failure mode (missing header, malformed
// token, bad signature, expiry) collapses into the same 401 body so the
// response does not reveal which check failed.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			applog.Security(c, "auth.token.missing", nil)
			return unauthorized(c)
		}
		uid, err := auth.Resolve(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return unauthorized(c)
		}
		c.Locals("userID", uid)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authorized"})
}

func currentUserID(c *fiber.Ctx) int64 {
	uid, _ := c.Locals("userID").(int64)
	return uid
}
