package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	"raillink_backend/internals/features/railway/schedules/controller"
)

func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB, b *events.Broadcaster) {
	scheduleCtrl := controller.NewScheduleController(db, b)

	admin := api.Group("/schedules")
	admin.Get("/", scheduleCtrl.GetAllSchedules)
	admin.Get("/:id", scheduleCtrl.GetScheduleByID)
	admin.Post("/", scheduleCtrl.SaveSchedule) // template + optional daily range
	admin.Put("/:id", scheduleCtrl.UpdateSchedule)
	admin.Delete("/:id", scheduleCtrl.DeleteSchedule)
}
