package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/attendance/dto"
	"academylms_backend/internals/features/academics/attendance/model"
	helper "academylms_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Attendance Session
// =============================
func (ctrl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	var body dto.CreateAttendanceSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	session := model.AttendanceSessionModel{
		AttendanceSessionAcademyID: academyID,
		AttendanceSessionClassID:   body.AttendanceSessionClassID,
		AttendanceSessionTeacherID: body.AttendanceSessionTeacherID,
		AttendanceSessionDate:      body.AttendanceSessionDate,
		AttendanceSessionTopic:     body.AttendanceSessionTopic,
		AttendanceSessionNote:      body.AttendanceSessionNote,
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance session")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance session created", dto.ToAttendanceSessionDTO(session))
}

// =============================
// 📄 List Sessions (by class)
// =============================
func (ctrl *AttendanceController) GetSessionsFiltered(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_academy_id = ? AND attendance_session_deleted_at IS NULL", academyID)

	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("attendance_session_class_id = ?", classID)
	}

	var rows []model.AttendanceSessionModel
	if err := q.Order("attendance_session_date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance sessions")
	}

	out := make([]dto.AttendanceSessionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToAttendanceSessionDTO(r))
	}
	return c.JSON(out)
}

// =============================
// ✍️ Upsert Attendance Record
// =============================
// One live record per (session, student); a second write for the same
// pair updates the status instead of inserting.
func (ctrl *AttendanceController) UpsertRecord(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	sessionID := c.Params("session_id")

	var body dto.UpsertAttendanceRecordRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_academy_id = ? AND attendance_session_deleted_at IS NULL", academyID).
		First(&session, "attendance_session_id = ?", sessionID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Attendance session not found")
	}

	var record model.AttendanceRecordModel
	now := time.Now()
	err = ctrl.DB.
		Where("attendance_record_session_id = ? AND attendance_record_student_id = ? AND attendance_record_deleted_at IS NULL",
			session.AttendanceSessionID, body.AttendanceRecordStudentID).
		First(&record).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"attendance_record_status":     body.AttendanceRecordStatus,
			"attendance_record_updated_at": &now,
		}
		if body.AttendanceRecordNote != nil {
			updates["attendance_record_note"] = *body.AttendanceRecordNote
		}
		if err := ctrl.DB.Model(&record).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update attendance record")
		}
	case err == gorm.ErrRecordNotFound:
		record = model.AttendanceRecordModel{
			AttendanceRecordAcademyID: academyID,
			AttendanceRecordSessionID: session.AttendanceSessionID,
			AttendanceRecordStudentID: body.AttendanceRecordStudentID,
			AttendanceRecordStatus:    body.AttendanceRecordStatus,
			AttendanceRecordNote:      body.AttendanceRecordNote,
		}
		if err := ctrl.DB.Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance record")
		}
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check attendance record")
	}

	return helper.Success(c, "Attendance saved", dto.ToAttendanceRecordDTO(record))
}

// =============================
// 📄 List Records for Session
// =============================
func (ctrl *AttendanceController) GetSessionRecords(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	sessionID := c.Params("session_id")

	var rows []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_academy_id = ? AND attendance_record_session_id = ? AND attendance_record_deleted_at IS NULL", academyID, sessionID).
		Order("attendance_record_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance records")
	}

	out := make([]dto.AttendanceRecordDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToAttendanceRecordDTO(r))
	}
	return c.JSON(out)
}

// =============================
// ❌ Soft-delete Session
// =============================
func (ctrl *AttendanceController) DeleteSession(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("session_id")

	now := time.Now()
	res := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_id = ? AND attendance_session_academy_id = ? AND attendance_session_deleted_at IS NULL", id, academyID).
		Update("attendance_session_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete attendance session")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Attendance session not found")
	}

	return helper.Success(c, "Attendance session deleted", nil)
}
