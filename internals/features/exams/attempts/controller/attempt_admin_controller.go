package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/exams/attempts/dto"
	"academylms_backend/internals/features/exams/attempts/model"
	"academylms_backend/internals/features/exams/attempts/service"
	sessionService "academylms_backend/internals/features/exams/sessions/service"
	helper "academylms_backend/internals/helpers"
)

// AttemptAdminController is the teacher/admin side: browsing attempts
// and manually grading essay answers.
type AttemptAdminController struct {
	DB *gorm.DB
}

func NewAttemptAdminController(db *gorm.DB) *AttemptAdminController {
	return &AttemptAdminController{DB: db}
}

// =============================
// 📄 List Attempts (admin, filterable)
// =============================
func (ctrl *AttemptAdminController) GetAllAttempts(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "started_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"started_at":   "student_exam_attempt_started_at",
		"submitted_at": "student_exam_attempt_submitted_at",
		"percentage":   "student_exam_attempt_percentage",
	}, "started_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.StudentExamAttemptModel{}).
		Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_deleted_at IS NULL", academyID)

	if examID := c.Query("exam_id"); examID != "" {
		q = q.Where("student_exam_attempt_exam_id = ?", examID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_exam_attempt_student_id = ?", studentID)
	}
	if sessionID := c.Query("session_id"); sessionID != "" {
		q = q.Where("student_exam_attempt_session_id = ?", sessionID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_exam_attempt_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var rows []model.StudentExamAttemptModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	out := make([]dto.StudentExamAttemptDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStudentExamAttemptDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Attempt By ID (admin, answers included)
// =============================
func (ctrl *AttemptAdminController) GetAttemptByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var attempt model.StudentExamAttemptModel
	if err := ctrl.DB.
		Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_deleted_at IS NULL", academyID).
		First(&attempt, "student_exam_attempt_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Attempt not found")
	}

	var answers []model.StudentAnswerModel
	if err := ctrl.DB.
		Where("student_answer_academy_id = ? AND student_answer_attempt_id = ? AND student_answer_deleted_at IS NULL",
			academyID, attempt.StudentExamAttemptID).
		Order("student_answer_created_at ASC").
		Find(&answers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch answers")
	}

	outAnswers := make([]dto.StudentAnswerDTO, 0, len(answers))
	for _, a := range answers {
		outAnswers = append(outAnswers, dto.ToStudentAnswerDTO(a))
	}

	return c.JSON(fiber.Map{
		"attempt": dto.ToStudentExamAttemptDTO(attempt),
		"answers": outAnswers,
	})
}

// =============================
// ✏️ Grade Answer (manual, then rescore)
// =============================
func (ctrl *AttemptAdminController) GradeAnswer(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.GradeAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var attempt model.StudentExamAttemptModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var answer model.StudentAnswerModel
		if err := tx.
			Where("student_answer_academy_id = ? AND student_answer_deleted_at IS NULL", academyID).
			First(&answer, "student_answer_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}

		now := time.Now()
		if err := tx.Model(&answer).Updates(map[string]any{
			"student_answer_points_earned": body.StudentAnswerPointsEarned,
			"student_answer_is_correct":    body.StudentAnswerIsCorrect,
			"student_answer_updated_at":    &now,
		}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_deleted_at IS NULL", academyID).
			First(&attempt, "student_exam_attempt_id = ?", answer.StudentAnswerAttemptID).Error; err != nil {
			return err
		}
		if _, err := service.RescoreAttempt(tx, academyID, &attempt); err != nil {
			return err
		}
		return sessionService.RecomputeSessionStats(tx, academyID, attempt.StudentExamAttemptSessionID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to grade answer")
	}

	return helper.Success(c, "Answer graded", dto.ToStudentExamAttemptDTO(attempt))
}

// =============================
// ❌ Soft-delete Attempt (admin)
// =============================
func (ctrl *AttemptAdminController) DeleteAttempt(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.StudentExamAttemptModel{}).
		Where("student_exam_attempt_id = ? AND student_exam_attempt_academy_id = ? AND student_exam_attempt_deleted_at IS NULL", id, academyID).
		Update("student_exam_attempt_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete attempt")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Attempt not found")
	}

	return helper.Success(c, "Attempt deleted", nil)
}
