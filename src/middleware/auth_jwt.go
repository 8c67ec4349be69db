package middleware

import (
	"Backend-Props/src/models"
	"Backend-Props/src/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthJWT rejects requests without a valid bearer token.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("username", claims.Username)

	return c.Next()
}

// OptionalAuthJWT attaches the current user when a valid token is present
// and lets the request through either way. Public submission routes use it:
// anonymous visitors may submit, but non-anonymous submissions need the
// identity this middleware provides.
func OptionalAuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Next()
	}

	claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Next()
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("username", claims.Username)

	return c.Next()
}

// CurrentUser reads the identity stored by the auth middleware. Returns nil
// when the request is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.CurrentUser {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return nil
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	email, _ := c.Locals("email").(string)
	return &models.CurrentUser{ID: oid, Email: email}
}
