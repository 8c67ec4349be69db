package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// FeedbackTypeRoutes covers feedback template management.
func FeedbackTypeRoutes(app *fiber.App) {
	typeRoutes := app.Group("/feedback-types", middleware.AuthJWT)
	typeRoutes.Get("/", controllers.GetMyFeedbackTypes)
	typeRoutes.Post("/", controllers.CreateFeedbackType)
	typeRoutes.Put("/:id", controllers.UpdateFeedbackType)
	typeRoutes.Patch("/:id/active", controllers.ToggleFeedbackType)
	typeRoutes.Delete("/:id", controllers.DeleteFeedbackType)
}
