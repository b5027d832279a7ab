package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/users/auth/controller"
	rateLimiter "raillink_backend/internals/middlewares"
)

// AuthRoutes mounts the auth endpoints under /api/auth. Logout reads
// the bearer token itself, so no auth middleware is needed here.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authCtrl.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authCtrl.Login)
	baseAuth.Post("/refresh-token", authCtrl.RefreshToken)
	baseAuth.Post("/logout", authCtrl.Logout)
}
