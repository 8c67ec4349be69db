package controllers

import (
	"Backend-Props/src/middleware"
	"Backend-Props/src/models"
	"Backend-Props/src/services/feedbacks"
	"Backend-Props/src/services/feedbacktypes"
	"Backend-Props/src/services/profiles"
	"Backend-Props/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GetPublicProfile resolves /:identifier and returns the profile together
// with its active feedback types.
// @Summary Public profile view
// @Tags public
// @Param identifier path string true "handle or registered address"
// @Success 200 {object} map[string]interface{}
// @Router /{identifier} [get]
func GetPublicProfile(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	ctx, cancel := requestContext()
	defer cancel()

	profile, err := profiles.ResolveIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Profile not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	types, err := feedbacktypes.GetActiveFeedbackTypes(ctx, profile.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load feedback types")
	}

	return c.JSON(fiber.Map{
		"profile":       profile,
		"feedbackTypes": types,
	})
}

// GetFeedbackForm resolves /:identifier/:feedbackType and returns the
// profile, the feedback type and the form fields a client must render.
func GetFeedbackForm(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	typeName := c.Params("feedbackType")

	ctx, cancel := requestContext()
	defer cancel()

	profile, err := profiles.ResolveIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Profile not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	ft, err := feedbacktypes.GetActiveFeedbackTypeByName(ctx, profile.ID, typeName)
	if err != nil {
		if errors.Is(err, feedbacktypes.ErrFeedbackTypeNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback type not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load feedback type")
	}

	return c.JSON(fiber.Map{
		"profile":      profile,
		"feedbackType": ft,
		"fields":       feedbacks.FormFields(ft),
	})
}

// SubmitFeedback handles POST /:identifier/:feedbackType. Anonymous
// submissions need no token; non-anonymous ones require the identity the
// optional auth middleware attaches.
func SubmitFeedback(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	typeName := c.Params("feedbackType")

	var req feedbacks.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	profile, err := profiles.ResolveIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Profile not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	ft, err := feedbacktypes.GetActiveFeedbackTypeByName(ctx, profile.ID, typeName)
	if err != nil {
		if errors.Is(err, feedbacktypes.ErrFeedbackTypeNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback type not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load feedback type")
	}

	feedback, err := feedbacks.SubmitFeedback(ctx, ft, &req, middleware.CurrentUser(c))
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.Is(err, feedbacks.ErrAuthRequired):
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		case errors.As(err, &ve):
			return utils.HandleValidationError(c, ve)
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save feedback")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// UpdateMyProfile applies the settings-page profile fields.
func UpdateMyProfile(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	var req profiles.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	updated, err := profiles.UpdateProfile(ctx, profile.ID, &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return c.JSON(updated)
}
