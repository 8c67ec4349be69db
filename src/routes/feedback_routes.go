package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// FeedbackRoutes covers the owner dashboard over received feedback.
func FeedbackRoutes(app *fiber.App) {
	feedbackRoutes := app.Group("/feedbacks", middleware.AuthJWT)
	feedbackRoutes.Get("/", controllers.GetMyFeedbacks)
	feedbackRoutes.Get("/summary", controllers.GetMySummary)
	feedbackRoutes.Patch("/:id/visibility", controllers.SetFeedbackVisibility)
	feedbackRoutes.Patch("/:id/content", controllers.UpdateFeedbackContent)
	feedbackRoutes.Delete("/:id", controllers.DeleteFeedback)
}
