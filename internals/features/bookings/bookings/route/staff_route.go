package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/bookings/controller"
)

// BookingStaffRoutes mounts the staff/admin booking listing.
func BookingStaffRoutes(api fiber.Router, db *gorm.DB) {
	bookingCtrl := controller.NewBookingController(db)

	staff := api.Group("/bookings")
	staff.Get("/", bookingCtrl.GetAllBookings) // ?schedule_id=&page=&per_page=
}
