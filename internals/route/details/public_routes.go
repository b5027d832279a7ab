package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	announcementRoute "raillink_backend/internals/features/announcements/announcements/route"
	paymentRoute "raillink_backend/internals/features/bookings/payments/route"
	scheduleRoute "raillink_backend/internals/features/railway/schedules/route"
	stationRoute "raillink_backend/internals/features/railway/stations/route"
)

// PublicRoutes mounts everything reachable without a token: station
// and schedule lookup, active announcements, and the payment gateway
// callback.
func PublicRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	stationRoute.StationPublicRoutes(api, db)
	scheduleRoute.SchedulePublicRoutes(api, db, b)
	announcementRoute.AnnouncementPublicRoutes(api, db)
	paymentRoute.PaymentPublicRoutes(api, db)
}
