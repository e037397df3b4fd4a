package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptcontroller "academylms_backend/internals/features/exams/attempts/controller"
	"academylms_backend/internals/middlewares"
)

// AttemptUserRoutes is the student-facing test-taking surface.
func AttemptUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := attemptcontroller.NewStudentExamAttemptController(db)
	attempts := user.Group("/attempts")
	attempts.Post("/", ctrl.StartAttempt)
	attempts.Get("/", ctrl.GetMyAttempts)
	attempts.Put("/:attempt_id/answers", middlewares.AutoSaveRateLimiter(), ctrl.SaveAnswer)
	attempts.Get("/:attempt_id/answers", ctrl.GetAttemptAnswers)
	attempts.Post("/:id/submit", ctrl.SubmitAttempt)
	attempts.Post("/:id/abandon", ctrl.AbandonAttempt)
}

// AttemptAdminRoutes is the teacher/admin grading surface.
func AttemptAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := attemptcontroller.NewAttemptAdminController(db)
	attempts := admin.Group("/attempts")
	attempts.Get("/", ctrl.GetAllAttempts)
	attempts.Get("/:id", ctrl.GetAttemptByID)
	attempts.Delete("/:id", ctrl.DeleteAttempt)
	admin.Put("/student-answers/:id/grade", ctrl.GradeAnswer)
}
