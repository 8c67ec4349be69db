package controllers

import (
	"Backend-Props/src/middleware"
	"Backend-Props/src/models"
	"Backend-Props/src/services"
	"Backend-Props/src/services/profiles"
	"Backend-Props/src/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser creates an account plus its profile and signs the user in.
func RegisterUser(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, profile, err := services.RegisterUser(ctx, &req)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return utils.HandleValidationError(c, ve)
		case errors.Is(err, services.ErrEmailRegistered):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, profiles.ErrUsernameTaken):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Registration failed")
		}
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, profile.Username)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"profile": profile,
		"message": "Registration successful",
	})
}

// LoginUser authenticates by email and password.
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if services.IsRateLimited(req.Email) {
		remainingTime := services.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, profile, err := services.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		services.LogLoginAttempt(req.Email, c.IP(), false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, profile.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	services.LogLoginAttempt(req.Email, c.IP(), true)
	services.TouchLastLogin(ctx, user.ID)

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":     token,
		"expiresIn": 86400,
		"profile":   profile,
		"message":   "Login successful",
	})
}

// GetMe returns the signed-in account's profile.
func GetMe(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := profiles.GetProfileByUserID(ctx, current.ID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Profile not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return c.JSON(profile)
}
