package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/bookings/controller"
	"raillink_backend/internals/middlewares"
)

// BookingUserRoutes mounts passenger booking endpoints. Creation sits
// behind the Idempotency-Key middleware so retried submits do not
// double-book.
func BookingUserRoutes(api fiber.Router, db *gorm.DB, rdb *redis.Client) {
	bookingCtrl := controller.NewBookingController(db)

	user := api.Group("/bookings")
	user.Post("/", middlewares.IdempotencyMiddleware(rdb), bookingCtrl.CreateBooking)
	user.Get("/", bookingCtrl.GetMyBookings)
	user.Post("/:id/cancel", bookingCtrl.CancelBooking)
}
