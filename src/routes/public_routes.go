package routes

import (
	"Backend-Props/src/controllers"
	"Backend-Props/src/middleware"
	"Backend-Props/src/services/profiles"
	"Backend-Props/src/utils"

	"github.com/gofiber/fiber/v2"
)

// IsReservedSegment reports whether a path segment is off limits for
// identifier resolution. The set lives with the profiles service so
// registration rejects these handles too.
func IsReservedSegment(segment string) bool {
	return profiles.IsReservedIdentifier(segment)
}

func guardReserved(c *fiber.Ctx) error {
	if IsReservedSegment(c.Params("identifier")) {
		return utils.HandleError(c, fiber.StatusNotFound, "Page not found")
	}
	return c.Next()
}

// PublicRoutes registers the identifier catch-alls. Must be registered
// after every fixed route so those always win. Submission uses optional
// auth: anonymous visitors pass through without a token.
func PublicRoutes(app *fiber.App) {
	app.Get("/:identifier", guardReserved, controllers.GetPublicProfile)
	app.Get("/:identifier/:feedbackType", guardReserved, controllers.GetFeedbackForm)
	app.Post("/:identifier/:feedbackType", guardReserved, middleware.OptionalAuthJWT, controllers.SubmitFeedback)
}
