package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/stations/controller"
)

func StationPublicRoutes(api fiber.Router, db *gorm.DB) {
	stationCtrl := controller.NewStationController(db)

	// active stations only
	api.Get("/stations", stationCtrl.GetActiveStations)
}
