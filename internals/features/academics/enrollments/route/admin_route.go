package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentcontroller "academylms_backend/internals/features/academics/enrollments/controller"
)

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := enrollmentcontroller.NewEnrollmentController(db)

	enrollments := admin.Group("/enrollments")
	enrollments.Post("/", ctrl.CreateEnrollment)
	enrollments.Get("/", ctrl.GetEnrollmentsFiltered)
	enrollments.Put("/:id", ctrl.UpdateEnrollment)
	enrollments.Delete("/:id", ctrl.DeleteEnrollment)
}
