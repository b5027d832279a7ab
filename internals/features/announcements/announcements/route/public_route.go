package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/announcements/announcements/controller"
)

func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	announcementCtrl := controller.NewAnnouncementController(db)

	api.Get("/announcements", announcementCtrl.GetActiveAnnouncements)
}
