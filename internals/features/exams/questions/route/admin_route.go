package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questioncontroller "academylms_backend/internals/features/exams/questions/controller"
)

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := questioncontroller.NewQuestionController(db)
	admin.Post("/exams/:exam_id/questions", ctrl.CreateQuestion)
	admin.Get("/exams/:exam_id/questions", ctrl.GetExamQuestions)
	admin.Put("/questions/:id", ctrl.UpdateQuestion)
	admin.Delete("/questions/:id", ctrl.DeleteQuestion)
}

// QuestionUserRoutes exposes the answer-key-free view for test-taking.
func QuestionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := questioncontroller.NewQuestionController(db)
	user.Get("/exams/:exam_id/questions", ctrl.GetExamQuestionsForStudent)
}
