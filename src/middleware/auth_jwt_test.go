package middleware

import (
	"Backend-Props/src/utils"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedApp(t *testing.T, handler fiber.Handler, mw fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", mw, handler)
	return app
}

func whoami(c *fiber.Ctx) error {
	current := CurrentUser(c)
	if current == nil {
		return c.SendString("anonymous")
	}
	return c.SendString(current.Email)
}

func TestAuthJWT(t *testing.T) {
	token, err := utils.GenerateJWT("507f1f77bcf86cd799439011", "alice@example.com", "alice")
	require.NoError(t, err)

	t.Run("MissingHeaderIsRejected", func(t *testing.T) {
		app := authedApp(t, whoami, AuthJWT)
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("BadTokenIsRejected", func(t *testing.T) {
		app := authedApp(t, whoami, AuthJWT)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ValidTokenPasses", func(t *testing.T) {
		app := authedApp(t, whoami, AuthJWT)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestOptionalAuthJWT(t *testing.T) {
	t.Run("NoTokenStillPasses", func(t *testing.T) {
		app := authedApp(t, whoami, OptionalAuthJWT)
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidTokenIsTreatedAsAnonymous", func(t *testing.T) {
		app := authedApp(t, whoami, OptionalAuthJWT)
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("ValidTokenAttachesIdentity", func(t *testing.T) {
		token, err := utils.GenerateJWT("507f1f77bcf86cd799439011", "alice@example.com", "alice")
		require.NoError(t, err)

		var seenEmail string
		app := authedApp(t, func(c *fiber.Ctx) error {
			if current := CurrentUser(c); current != nil {
				seenEmail = current.Email
			}
			return c.SendString("ok")
		}, OptionalAuthJWT)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		_, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", seenEmail)
	})
}
