package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes covers registration, login and the current-account endpoint.
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)
}
