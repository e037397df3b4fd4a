package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentcontroller "academylms_backend/internals/features/exams/assignments/controller"
)

func ClassExamAssignmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := assignmentcontroller.NewClassExamAssignmentController(db)
	assignments := admin.Group("/class-exam-assignments")
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Get("/", ctrl.GetAllAssignments)
	assignments.Get("/:id", ctrl.GetAssignmentByID)
	assignments.Put("/:id", ctrl.UpdateAssignment)
	assignments.Delete("/:id", ctrl.DeleteAssignment)
}
