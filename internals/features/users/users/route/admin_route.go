package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "academylms_backend/internals/features/users/users/controller"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserController(db)

	users := admin.Group("/users")
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
