package middleware

import (
	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware authenticates via the session cookie and stores the
// verified subject in the request locals. Every failure collapses into the
// same 401 body so callers cannot distinguish expired from forged tokens.
func AuthMiddleware(jwt services.IJWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(config.Conf.Application.Security.CookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized",
			})
		}

		subject, err := jwt.VerifySubject(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized",
			})
		}

		c.Locals("subject", subject)
		return c.Next()
	}
}
