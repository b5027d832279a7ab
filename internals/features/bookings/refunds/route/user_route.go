package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/refunds/controller"
)

func RefundUserRoutes(api fiber.Router, db *gorm.DB) {
	refundCtrl := controller.NewRefundController(db)

	user := api.Group("/refunds")
	user.Post("/", refundCtrl.RequestRefund)
	user.Get("/", refundCtrl.GetMyRefunds)
}
