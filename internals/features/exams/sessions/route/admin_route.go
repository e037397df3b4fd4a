package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessioncontroller "academylms_backend/internals/features/exams/sessions/controller"
)

func ExamSessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sessioncontroller.NewExamSessionController(db)
	sessions := admin.Group("/exam-sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/", ctrl.GetAllSessions)
	sessions.Get("/:id", ctrl.GetSessionByID)
	sessions.Put("/:id", ctrl.UpdateSession)
	sessions.Put("/:id/status", ctrl.ChangeSessionStatus)
	sessions.Delete("/:id", ctrl.DeleteSession)
}
