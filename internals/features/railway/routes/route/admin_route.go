package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/routes/controller"
)

func RouteAdminRoutes(api fiber.Router, db *gorm.DB) {
	routeCtrl := controller.NewRouteController(db)

	admin := api.Group("/routes")
	admin.Get("/", routeCtrl.GetAllRoutes)
	admin.Get("/:id", routeCtrl.GetRouteByID)
	admin.Post("/", routeCtrl.CreateRoute)
	admin.Put("/:id", routeCtrl.UpdateRoute)
	admin.Delete("/:id", routeCtrl.DeleteRoute)
}
