package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	announcementRoute "raillink_backend/internals/features/announcements/announcements/route"
	bookingRoute "raillink_backend/internals/features/bookings/bookings/route"
	scheduleRoute "raillink_backend/internals/features/railway/schedules/route"
)

// StaffRoutes mounts endpoints for staff and admin: schedule status
// adjustments, booking oversight, and announcement management.
func StaffRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	scheduleRoute.ScheduleStaffRoutes(api, db, b)
	bookingRoute.BookingStaffRoutes(api, db)
	announcementRoute.AnnouncementStaffRoutes(api, db)
}
