package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/payments/controller"
)

// PaymentPublicRoutes mounts the Midtrans notification callback.
// The path is skipped by the auth middleware.
func PaymentPublicRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)

	api.Post("/payments/notification", paymentCtrl.HandleMidtransNotification)
}
