package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/refunds/controller"
)

func RefundAdminRoutes(api fiber.Router, db *gorm.DB) {
	refundCtrl := controller.NewRefundController(db)

	admin := api.Group("/refunds")
	admin.Get("/", refundCtrl.GetAllRefunds) // ?status=&page=&per_page=
	admin.Post("/:id/approve", refundCtrl.ApproveRefund)
	admin.Post("/:id/reject", refundCtrl.RejectRefund)
	admin.Post("/:id/issued", refundCtrl.IssueRefund)
}
