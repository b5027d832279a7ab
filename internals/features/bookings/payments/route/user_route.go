package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/payments/controller"
)

func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)

	api.Post("/bookings/:id/pay", paymentCtrl.PayBooking)
}
