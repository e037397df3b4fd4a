package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teachercontroller "academylms_backend/internals/features/academics/teachers/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := teachercontroller.NewTeacherController(db)

	teachers := admin.Group("/teachers")
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Get("/", ctrl.GetAllTeachers)
	teachers.Get("/:id", ctrl.GetTeacherByID)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
}
