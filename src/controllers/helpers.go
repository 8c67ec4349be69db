package controllers

import (
	"Backend-Props/src/middleware"
	"Backend-Props/src/models"
	"Backend-Props/src/services/profiles"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 5 * time.Second

// requestContext bounds one data-access round trip.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// ownerProfile loads the profile behind the authenticated request. Writes
// an error response and returns nil when there is none.
func ownerProfile(c *fiber.Ctx) *models.Profile {
	current := middleware.CurrentUser(c)
	if current == nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Not authenticated",
		})
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	profile, err := profiles.GetProfileByUserID(ctx, current.ID)
	if err != nil {
		status := fiber.StatusInternalServerError
		msg := "Failed to load profile"
		if errors.Is(err, profiles.ErrProfileNotFound) {
			status = fiber.StatusNotFound
			msg = "Profile not found"
		}
		_ = c.Status(status).JSON(models.ErrorResponse{Status: status, Message: msg})
		return nil
	}
	return profile
}
