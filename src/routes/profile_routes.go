package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProfileRoutes covers the settings-page profile mutation.
func ProfileRoutes(app *fiber.App) {
	profileRoutes := app.Group("/profiles", middleware.AuthJWT)
	profileRoutes.Put("/me", controllers.UpdateMyProfile)
}
