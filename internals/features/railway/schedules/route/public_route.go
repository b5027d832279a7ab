package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	"raillink_backend/internals/features/railway/schedules/controller"
)

func SchedulePublicRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	scheduleCtrl := controller.NewScheduleController(db, b)

	// search: ?date=&route_id=&train_id=
	api.Get("/schedules", scheduleCtrl.GetAllSchedules)
	api.Get("/schedules/:id", scheduleCtrl.GetScheduleByID)
}

func ScheduleStaffRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	scheduleCtrl := controller.NewScheduleController(db, b)

	staff := api.Group("/schedules")
	staff.Get("/", scheduleCtrl.GetAllSchedules)
	staff.Get("/:id", scheduleCtrl.GetScheduleByID)
	staff.Put("/:id", scheduleCtrl.UpdateSchedule) // staff may adjust status/delay
}
