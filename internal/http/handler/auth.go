package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"cybercorner/internal/contract"
	"cybercorner/internal/http/middleware"
	"cybercorner/internal/service"
)

// Login authenticates an administrator and sets the session cookie.
// Unknown email and wrong password produce byte-identical 401 responses.
func Login(auth service.AuthService, secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}
		if err := contract.AuthLogin.ValidateInput(body); err != nil {
			return writeValidationError(c, err)
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.Unmarshal(c.Body(), &creds); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid JSON body")
		}

		admin, token, err := auth.Login(c.UserContext(), creds.Email, creds.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "Invalid email or password")
			}
			return internalError(c, err)
		}

		setTokenCookie(c, token, secureCookies)
		return c.JSON(fiber.Map{"message": "Logged in successfully", "user": admin})
	}
}

// Logout clears the session cookie. There is no server-side session state to
// revoke; an already-issued token stays valid until it expires.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clearTokenCookie(c)
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

// Me returns the authenticated administrator. Must run behind middleware.Auth.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := middleware.AdminFromCtx(c)
		if admin == nil {
			return writeError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.JSON(fiber.Map{"user": admin})
	}
}

func setTokenCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		MaxAge:   int(service.TokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
