package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/configs"
	"raillink_backend/internals/constants"
	"raillink_backend/internals/events"
	"raillink_backend/internals/middlewares"
	authMiddleware "raillink_backend/internals/middlewares/auth"
	routeDetails "raillink_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes wires every feature under the four access groups:
//
//	/api/public — no auth
//	/api/u      — any authenticated user
//	/api/s      — staff and admin
//	/api/a      — admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) *events.Broadcaster {
	startTime = time.Now()

	broadcaster := events.NewBroadcaster(configs.KafkaBrokers, configs.KafkaTopic)
	rdb := middlewares.NewRedisClient(configs.RedisAddr, configs.RedisPassword)

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up USER group (Auth)...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up STAFF group (Auth + RoleCheck)...")
	staff := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Staff access required", constants.StaffAndAbove...),
	)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.AdminOnly...),
	)

	// ===================== FEATURES =====================
	routeDetails.PublicRoutes(public, db, broadcaster)
	routeDetails.UserRoutes(user, db, rdb)
	routeDetails.StaffRoutes(staff, db, broadcaster)
	routeDetails.AdminRoutes(admin, db, broadcaster)
	routeDetails.AuthRoutes(app, db)

	return broadcaster
}
