package controllers

import (
	"Backend-Props/src/models"
	"Backend-Props/src/services/feedbacktypes"
	"Backend-Props/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFeedbackType adds a template to the caller's profile.
func CreateFeedbackType(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	var req feedbacktypes.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	ft, err := feedbacktypes.CreateFeedbackType(ctx, profile.ID, &req)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return utils.HandleValidationError(c, ve)
		case errors.Is(err, feedbacktypes.ErrNameTaken):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create feedback type")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(ft)
}

// GetMyFeedbackTypes lists every template the caller owns.
func GetMyFeedbackTypes(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	types, err := feedbacktypes.GetFeedbackTypesForProfile(ctx, profile.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load feedback types")
	}

	return c.JSON(types)
}

// UpdateFeedbackType replaces an owned template's definition.
func UpdateFeedbackType(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	typeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback type ID")
	}

	var req feedbacktypes.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	ft, err := feedbacktypes.UpdateFeedbackType(ctx, profile.ID, typeID, &req)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return utils.HandleValidationError(c, ve)
		case errors.Is(err, feedbacktypes.ErrFeedbackTypeNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, feedbacktypes.ErrNameTaken):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update feedback type")
		}
	}

	return c.JSON(ft)
}

// ToggleFeedbackType flips or sets the active flag.
func ToggleFeedbackType(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	typeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback type ID")
	}

	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := feedbacktypes.SetActive(ctx, profile.ID, typeID, body.IsActive); err != nil {
		if errors.Is(err, feedbacktypes.ErrFeedbackTypeNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update feedback type")
	}

	return c.JSON(fiber.Map{"message": "Feedback type updated", "isActive": body.IsActive})
}

// DeleteFeedbackType removes an owned template.
func DeleteFeedbackType(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	typeID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback type ID")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := feedbacktypes.DeleteFeedbackType(ctx, profile.ID, typeID); err != nil {
		if errors.Is(err, feedbacktypes.ErrFeedbackTypeNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete feedback type")
	}

	return c.JSON(fiber.Map{"message": "Feedback type deleted"})
}
