package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	AuthRoutes(app)
	ProfileRoutes(app)
	EmailRoutes(app)
	FeedbackTypeRoutes(app)
	FeedbackRoutes(app)
	ApiKeyRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	// catch-all identifier routes go last so fixed paths win
	PublicRoutes(app)
}
