package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/stations/controller"
)

func StationAdminRoutes(api fiber.Router, db *gorm.DB) {
	stationCtrl := controller.NewStationController(db)

	admin := api.Group("/stations")
	admin.Get("/", stationCtrl.GetAllStations)
	admin.Get("/:id", stationCtrl.GetStationByID)
	admin.Post("/", stationCtrl.CreateStation)
	admin.Put("/:id", stationCtrl.UpdateStation)
	admin.Delete("/:id", stationCtrl.DeleteStation) // soft delete
}
