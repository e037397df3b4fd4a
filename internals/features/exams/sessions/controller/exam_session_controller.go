package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentModel "academylms_backend/internals/features/exams/assignments/model"
	"academylms_backend/internals/features/exams/sessions/dto"
	"academylms_backend/internals/features/exams/sessions/model"
	"academylms_backend/internals/features/exams/sessions/service"
	helper "academylms_backend/internals/helpers"
)

type ExamSessionController struct {
	DB *gorm.DB
}

func NewExamSessionController(db *gorm.DB) *ExamSessionController {
	return &ExamSessionController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Session (starts as scheduled)
// =============================
func (ctrl *ExamSessionController) CreateSession(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	var body dto.CreateExamSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment assignmentModel.ClassExamAssignmentModel
	if err := ctrl.DB.
		Where("class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", academyID).
		First(&assignment, "class_exam_assignment_id = ?", body.ExamSessionAssignmentID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Assignment not found")
	}

	session := model.ExamSessionModel{
		ExamSessionAcademyID:    academyID,
		ExamSessionAssignmentID: assignment.ClassExamAssignmentID,
		ExamSessionExamID:       assignment.ClassExamAssignmentExamID,
		ExamSessionClassID:      assignment.ClassExamAssignmentClassID,
		ExamSessionTeacherID:    body.ExamSessionTeacherID,
		ExamSessionName:         body.ExamSessionName,
		ExamSessionStatus:       service.SessionStatusScheduled,
		ExamSessionScheduledAt:  body.ExamSessionScheduledAt,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam session")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam session created", dto.ToExamSessionDTO(session))
}

// =============================
// 📄 List Sessions
// =============================
func (ctrl *ExamSessionController) GetAllSessions(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at":   "exam_session_created_at",
		"scheduled_at": "exam_session_scheduled_at",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.ExamSessionModel{}).
		Where("exam_session_academy_id = ? AND exam_session_deleted_at IS NULL", academyID)

	if status := c.Query("status"); status != "" {
		q = q.Where("exam_session_status = ?", status)
	}
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("exam_session_class_id = ?", classID)
	}
	if examID := c.Query("exam_id"); examID != "" {
		q = q.Where("exam_session_exam_id = ?", examID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count exam sessions")
	}

	var rows []model.ExamSessionModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam sessions")
	}

	out := make([]dto.ExamSessionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToExamSessionDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Session By ID
// =============================
func (ctrl *ExamSessionController) GetSessionByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var session model.ExamSessionModel
	if err := ctrl.DB.
		Where("exam_session_academy_id = ? AND exam_session_deleted_at IS NULL", academyID).
		First(&session, "exam_session_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
	}

	return c.JSON(dto.ToExamSessionDTO(session))
}

// =============================
// ✏️ Update Session (name/teacher/schedule only)
// =============================
func (ctrl *ExamSessionController) UpdateSession(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateExamSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.ExamSessionModel
	if err := ctrl.DB.
		Where("exam_session_academy_id = ? AND exam_session_deleted_at IS NULL", academyID).
		First(&session, "exam_session_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
	}

	updates := map[string]any{}
	if body.ExamSessionTeacherID != nil {
		updates["exam_session_teacher_id"] = *body.ExamSessionTeacherID
	}
	if body.ExamSessionName != nil {
		updates["exam_session_name"] = *body.ExamSessionName
	}
	if body.ExamSessionScheduledAt != nil {
		updates["exam_session_scheduled_at"] = *body.ExamSessionScheduledAt
	}
	now := time.Now()
	updates["exam_session_updated_at"] = &now

	if err := ctrl.DB.Model(&session).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam session")
	}

	return helper.Success(c, "Exam session updated", dto.ToExamSessionDTO(session))
}

// =============================
// ✏️ Change Session Status (state machine)
// =============================
func (ctrl *ExamSessionController) ChangeSessionStatus(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.ChangeExamSessionStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.ExamSessionModel
	if err := ctrl.DB.
		Where("exam_session_academy_id = ? AND exam_session_deleted_at IS NULL", academyID).
		First(&session, "exam_session_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
	}

	if err := service.ValidateSessionTransition(session.ExamSessionStatus, body.ExamSessionStatus); err != nil {
		if errors.Is(err, service.ErrInvalidSessionTransition) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to change session status")
	}

	now := time.Now()
	updates := map[string]any{
		"exam_session_status":     body.ExamSessionStatus,
		"exam_session_updated_at": &now,
	}
	switch body.ExamSessionStatus {
	case service.SessionStatusActive:
		if session.ExamSessionStartedAt == nil {
			updates["exam_session_started_at"] = &now
		}
	case service.SessionStatusCompleted, service.SessionStatusCancelled:
		updates["exam_session_ended_at"] = &now
	}

	if err := ctrl.DB.Model(&session).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to change session status")
	}

	return helper.Success(c, "Exam session status changed", dto.ToExamSessionDTO(session))
}

// =============================
// ❌ Soft-delete Session
// =============================
func (ctrl *ExamSessionController) DeleteSession(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.ExamSessionModel{}).
		Where("exam_session_id = ? AND exam_session_academy_id = ? AND exam_session_deleted_at IS NULL", id, academyID).
		Update("exam_session_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam session")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam session not found")
	}

	return helper.Success(c, "Exam session deleted", nil)
}
