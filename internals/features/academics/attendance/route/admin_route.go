package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancecontroller "academylms_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewAttendanceController(db)

	sessions := admin.Group("/attendance-sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/", ctrl.GetSessionsFiltered)
	sessions.Post("/:session_id/records", ctrl.UpsertRecord)
	sessions.Get("/:session_id/records", ctrl.GetSessionRecords)
	sessions.Delete("/:session_id", ctrl.DeleteSession)
}
