package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", NewMiddleware().AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{
			name:       "valid credential",
			secret:     "hunter2",
			header:     "Bearer hunter2",
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "wrong credential",
			secret:     "hunter2",
			header:     "Bearer nope",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing header",
			secret:     "hunter2",
			header:     "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing bearer prefix",
			secret:     "hunter2",
			header:     "hunter2",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			// an unset credential locks the admin surface instead of
			// opening it
			name:       "no credential configured",
			secret:     "",
			header:     "Bearer ",
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_PASSWORD", tt.secret)
			app := newProtectedApp()

			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			res, err := app.Test(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}
