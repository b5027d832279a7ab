package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bookingRoute "raillink_backend/internals/features/bookings/bookings/route"
	paymentRoute "raillink_backend/internals/features/bookings/payments/route"
	refundRoute "raillink_backend/internals/features/bookings/refunds/route"
	userRoute "raillink_backend/internals/features/users/user/route"
)

// UserRoutes mounts endpoints for any authenticated passenger.
func UserRoutes(api fiber.Router, db *gorm.DB, rdb *redis.Client) {
	bookingRoute.BookingUserRoutes(api, db, rdb)
	paymentRoute.PaymentUserRoutes(api, db)
	refundRoute.RefundUserRoutes(api, db)
	userRoute.UserProfileRoutes(api, db)
}
