package controllers

import (
	"Backend-Props/src/models"
	"Backend-Props/src/services/emails"
	"Backend-Props/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyEmails lists the caller's alternate addresses.
func GetMyEmails(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	list, err := emails.GetEmailsForProfile(ctx, profile.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load emails")
	}

	return c.JSON(list)
}

// AddEmail registers a new alternate address for the caller.
func AddEmail(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	var req emails.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	email, err := emails.AddEmail(ctx, profile.ID, &req)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return utils.HandleValidationError(c, ve)
		case errors.Is(err, emails.ErrEmailTaken):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to add email")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(email)
}

// UpdateEmail edits the display overrides of an owned address.
func UpdateEmail(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	emailID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid email ID")
	}

	var req emails.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	email, err := emails.UpdateEmail(ctx, profile.ID, emailID, &req)
	if err != nil {
		if errors.Is(err, emails.ErrEmailNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update email")
	}

	return c.JSON(email)
}

// SetPrimaryEmail promotes an owned address to primary.
func SetPrimaryEmail(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	emailID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid email ID")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := emails.SetPrimary(ctx, profile.ID, emailID); err != nil {
		if errors.Is(err, emails.ErrEmailNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update primary email")
	}

	return c.JSON(fiber.Map{"message": "Primary email updated"})
}

// DeleteEmail removes an owned address, promoting a replacement primary
// when needed.
func DeleteEmail(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	emailID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid email ID")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := emails.DeleteEmail(ctx, profile.ID, emailID); err != nil {
		if errors.Is(err, emails.ErrEmailNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete email")
	}

	return c.JSON(fiber.Map{"message": "Email deleted"})
}
