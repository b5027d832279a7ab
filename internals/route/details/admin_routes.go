package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	refundRoute "raillink_backend/internals/features/bookings/refunds/route"
	routeRoute "raillink_backend/internals/features/railway/routes/route"
	scheduleRoute "raillink_backend/internals/features/railway/schedules/route"
	stationRoute "raillink_backend/internals/features/railway/stations/route"
	trainRoute "raillink_backend/internals/features/railway/trains/route"
	userRoute "raillink_backend/internals/features/users/user/route"
)

// AdminRoutes mounts the full management surface: network data,
// schedule generation, refund processing, and user administration.
func AdminRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	stationRoute.StationAdminRoutes(api, db)
	trainRoute.TrainAdminRoutes(api, db)
	routeRoute.RouteAdminRoutes(api, db)
	scheduleRoute.ScheduleAdminRoutes(api, db, b)
	refundRoute.RefundAdminRoutes(api, db)
	userRoute.UserAdminRoutes(api, db)
}
