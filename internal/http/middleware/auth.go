package middleware

import (
	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/model"
	"cybercorner/internal/service"
)

const (
	// TokenCookie is the one cookie this application uses.
	TokenCookie = "token"
	// AdminLocalKey is the fiber locals key the verified admin is stored
	// under for downstream handlers.
	AdminLocalKey = "admin"
)

// Auth guards administrator routes. It reads the token cookie, verifies
// signature and expiry, resolves the admin, and attaches it to the request.
// Any failure is a uniform 401 so a probing client learns nothing about why.
func Auth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			return unauthorized(c)
		}

		admin, err := auth.VerifyToken(c.UserContext(), token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(AdminLocalKey, admin)
		return c.Next()
	}
}

// AdminFromCtx returns the admin attached by Auth, or nil on unguarded routes.
func AdminFromCtx(c *fiber.Ctx) *model.Admin {
	if admin, ok := c.Locals(AdminLocalKey).(*model.Admin); ok {
		return admin
	}
	return nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}
