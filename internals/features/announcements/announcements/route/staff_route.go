package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/announcements/announcements/controller"
)

func AnnouncementStaffRoutes(api fiber.Router, db *gorm.DB) {
	announcementCtrl := controller.NewAnnouncementController(db)

	staff := api.Group("/announcements")
	staff.Get("/", announcementCtrl.GetAllAnnouncements)
	staff.Get("/:id", announcementCtrl.GetAnnouncementByID)
	staff.Post("/", announcementCtrl.CreateAnnouncement)
	staff.Put("/:id", announcementCtrl.UpdateAnnouncement)
	staff.Delete("/:id", announcementCtrl.DeleteAnnouncement)
}
