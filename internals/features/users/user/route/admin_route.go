package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	admin := api.Group("/users")
	admin.Get("/", userCtrl.GetAllUsers) // ?q=&role=&page=&per_page=
	admin.Get("/:id", userCtrl.GetUserByID)
	admin.Post("/", userCtrl.CreateUser)
	admin.Put("/:id", userCtrl.UpdateUser)
	admin.Patch("/:id/role", userCtrl.UpdateUserRole)
	admin.Delete("/:id", userCtrl.DeleteUser)
}

func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	api.Get("/profile", userCtrl.GetMyProfile)
}
