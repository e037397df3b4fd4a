package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentcontroller "academylms_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentcontroller.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.GetAllStudents)
	students.Get("/:id", ctrl.GetStudentByID)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
