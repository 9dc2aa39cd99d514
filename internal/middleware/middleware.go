package middleware

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/internal/api/presenters"
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AdminMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AdminMiddleware gates write endpoints behind the single shared admin
// credential. The comparison is constant-time and the rejection reveals
// nothing about the target resource.
func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := os.Getenv("ADMIN_PASSWORD")
		header := c.Get(fiber.HeaderAuthorization)
		expected := "Bearer " + secret

		if secret == "" || subtle.ConstantTimeCompare([]byte(header), []byte(expected)) != 1 {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
		}
		return c.Next()
	}
}
