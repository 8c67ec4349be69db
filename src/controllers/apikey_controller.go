package controllers

import (
	"Backend-Props/src/models"
	"Backend-Props/src/services/apikeys"
	"Backend-Props/src/services/feedbacks"
	"Backend-Props/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateApiKey mints a new key. The plaintext appears in this response
// only; afterwards listings show the masked prefix.
func CreateApiKey(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext()
	defer cancel()

	record, key, err := apikeys.CreateApiKey(ctx, profile.ID, body.Name)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			return utils.HandleValidationError(c, ve)
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create API key")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"apiKey":  record,
		"key":     key,
		"message": "Copy this key now, it will not be shown again",
	})
}

// GetMyApiKeys lists the caller's keys, masked.
func GetMyApiKeys(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	keys, err := apikeys.GetApiKeysForProfile(ctx, profile.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load API keys")
	}

	return c.JSON(keys)
}

// DeleteApiKey revokes an owned key.
func DeleteApiKey(c *fiber.Ctx) error {
	profile := ownerProfile(c)
	if profile == nil {
		return nil
	}

	keyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid API key ID")
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := apikeys.DeleteApiKey(ctx, profile.ID, keyID); err != nil {
		if errors.Is(err, apikeys.ErrApiKeyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete API key")
	}

	return c.JSON(fiber.Map{"message": "API key deleted"})
}

// ExportFeedbacks serves the API-key integration endpoint: every feedback
// entry for the key's profile, oldest first.
func ExportFeedbacks(c *fiber.Ctx) error {
	profileID, ok := c.Locals("apiKeyProfileId").(primitive.ObjectID)
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "API key required")
	}

	ctx, cancel := requestContext()
	defer cancel()

	list, err := feedbacks.ExportFeedbacks(ctx, profileID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to export feedback")
	}

	return c.JSON(fiber.Map{"data": list, "count": len(list)})
}
