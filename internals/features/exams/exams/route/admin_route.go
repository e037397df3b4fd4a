package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examcontroller "academylms_backend/internals/features/exams/exams/controller"
)

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	examCtrl := examcontroller.NewExamController(db)
	exams := admin.Group("/exams")
	exams.Post("/", examCtrl.CreateExam)
	exams.Get("/", examCtrl.GetAllExams)
	exams.Get("/:id", examCtrl.GetExamByID)
	exams.Put("/:id", examCtrl.UpdateExam)
	exams.Delete("/:id", examCtrl.DeleteExam)

	fileCtrl := examcontroller.NewExamFileController(db)
	exams.Post("/:exam_id/files", fileCtrl.CreateExamFile)
	exams.Get("/:exam_id/files", fileCtrl.GetExamFiles)
	admin.Put("/exam-files/:id", fileCtrl.UpdateExamFile)
	admin.Delete("/exam-files/:id", fileCtrl.DeleteExamFile)
}
