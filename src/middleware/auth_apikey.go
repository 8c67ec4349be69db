package middleware

import (
	"Backend-Props/src/services/apikeys"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthApiKey guards the integration API. Accepts the plaintext key as a
// bearer token and stores the owning profile id for the handler.
func AuthApiKey(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	key := strings.TrimPrefix(authHeader, "Bearer ")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profileID, err := apikeys.VerifyKey(ctx, key)
	if err != nil {
		if errors.Is(err, apikeys.ErrInvalidApiKey) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid API key"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify API key"})
	}

	c.Locals("apiKeyProfileId", profileID)
	return c.Next()
}
