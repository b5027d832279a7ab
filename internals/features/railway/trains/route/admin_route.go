package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/trains/controller"
)

func TrainAdminRoutes(api fiber.Router, db *gorm.DB) {
	trainCtrl := controller.NewTrainController(db)

	admin := api.Group("/trains")
	admin.Get("/", trainCtrl.GetAllTrains)
	admin.Get("/:id", trainCtrl.GetTrainByID)
	admin.Post("/", trainCtrl.CreateTrain)
	admin.Put("/:id", trainCtrl.UpdateTrain)
	admin.Delete("/:id", trainCtrl.DeleteTrain)
}
