package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classcontroller "academylms_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classCtrl := classcontroller.NewClassController(db)
	classes := admin.Group("/classes")
	classes.Post("/", classCtrl.CreateClass)
	classes.Get("/", classCtrl.GetAllClasses)
	classes.Get("/:id", classCtrl.GetClassByID)
	classes.Put("/:id", classCtrl.UpdateClass)
	classes.Delete("/:id", classCtrl.DeleteClass)

	ctCtrl := classcontroller.NewClassTeacherController(db)
	classes.Post("/:class_id/teachers", ctCtrl.AssignTeacher)
	classes.Get("/:class_id/teachers", ctCtrl.GetClassTeachers)
	admin.Delete("/class-teachers/:id", ctCtrl.UnassignTeacher)
}
