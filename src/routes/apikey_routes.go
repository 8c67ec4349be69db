package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyRoutes covers key management plus the key-authenticated export API.
func ApiKeyRoutes(app *fiber.App) {
	keyRoutes := app.Group("/apikeys", middleware.AuthJWT)
	keyRoutes.Get("/", controllers.GetMyApiKeys)
	keyRoutes.Post("/", controllers.CreateApiKey)
	keyRoutes.Delete("/:id", controllers.DeleteApiKey)

	api := app.Group("/api/v1", middleware.AuthApiKey)
	api.Get("/feedbacks", controllers.ExportFeedbacks)
}
