package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReservedSegment(t *testing.T) {
	t.Run("FixedPagesAreReserved", func(t *testing.T) {
		for _, segment := range []string{"dashboard", "settings", "api", "auth", "swagger"} {
			assert.True(t, IsReservedSegment(segment), "%s must be reserved", segment)
		}
	})

	t.Run("OrdinaryIdentifiersAreNot", func(t *testing.T) {
		for _, segment := range []string{"alice", "bob@example.com", "dash", "settings2"} {
			assert.False(t, IsReservedSegment(segment), "%s must not be reserved", segment)
		}
	})
}

func TestGuardReserved(t *testing.T) {
	app := fiber.New()
	app.Get("/:identifier", guardReserved, func(c *fiber.Ctx) error {
		return c.SendString("resolved " + c.Params("identifier"))
	})

	t.Run("ReservedSegmentIs404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("IdentifierPassesThrough", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/alice", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
