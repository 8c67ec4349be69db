package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// EmailRoutes covers alternate-address management.
func EmailRoutes(app *fiber.App) {
	emailRoutes := app.Group("/emails", middleware.AuthJWT)
	emailRoutes.Get("/", controllers.GetMyEmails)
	emailRoutes.Post("/", controllers.AddEmail)
	emailRoutes.Put("/:id", controllers.UpdateEmail)
	emailRoutes.Put("/:id/primary", controllers.SetPrimaryEmail)
	emailRoutes.Delete("/:id", controllers.DeleteEmail)
}
