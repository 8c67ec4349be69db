package controllers

import (
	"Backend-Props/src/models"
	"Backend-Props/src/services/feedbacks"
	"Backend-Props/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyFeedbacks lists feedback received by the caller, paginated.
func GetMyFeedbacks(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil || params.Page < 1 || params.Limit < 1 {
		params = models.DefaultPagination()
	}

	ctx, cancel := requestContext()
	defer cancel()

	page, err := feedbacks.GetFeedbacksForProfile(ctx, profile.ID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load feedback")
	}

	return c.JSON(page)
}

// GetMySummary returns received-feedback counts per type.
func GetMySummary(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	summary, err := feedbacks.GetProfileSummary(ctx, profile.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load summary")
	}

	return c.JSON(summary)
}

// SetFeedbackVisibility toggles whether an entry is publicly visible.
func SetFeedbackVisibility(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	feedbackID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback ID")
	}

	var body struct {
		IsVisible bool `json:"isVisible"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := feedbacks.SetVisibility(ctx, profile.ID, feedbackID, body.IsVisible); err != nil {
		if errors.Is(err, feedbacks.ErrFeedbackNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update feedback")
	}

	return c.JSON(fiber.Map{"message": "Feedback updated", "isVisible": body.IsVisible})
}

// UpdateFeedbackContent edits the free-text body of a received entry.
func UpdateFeedbackContent(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	feedbackID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback ID")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := feedbacks.UpdateContent(ctx, profile.ID, feedbackID, body.Content); err != nil {
		if errors.Is(err, feedbacks.ErrFeedbackNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update feedback")
	}

	return c.JSON(fiber.Map{"message": "Feedback updated"})
}

// DeleteFeedback removes a received entry.
func DeleteFeedback(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	feedbackID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid feedback ID")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := feedbacks.DeleteFeedback(ctx, profile.ID, feedbackID); err != nil {
		if errors.Is(err, feedbacks.ErrFeedbackNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete feedback")
	}

	return c.JSON(fiber.Map{"message": "Feedback deleted"})
}
