package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "academylms_backend/internals/features/exams/assignments/model"
	"academylms_backend/internals/features/exams/attempts/dto"
	"academylms_backend/internals/features/exams/attempts/model"
	"academylms_backend/internals/features/exams/attempts/service"
	examModel "academylms_backend/internals/features/exams/exams/model"
	questionModel "academylms_backend/internals/features/exams/questions/model"
	sessionService "academylms_backend/internals/features/exams/sessions/service"
	helper "academylms_backend/internals/helpers"
)

type StudentExamAttemptController struct {
	DB *gorm.DB
}

func NewStudentExamAttemptController(db *gorm.DB) *StudentExamAttemptController {
	return &StudentExamAttemptController{DB: db}
}

var validate = validator.New()

// assignmentOverrides mirrors the attempt-related keys of
// class_exam_assignment_config.
type assignmentOverrides struct {
	MaxAttempts      *int `json:"max_attempts"`
	TimeLimitMinutes *int `json:"time_limit_minutes"`
}

// =============================
// ➕ Start Attempt (student)
// =============================
func (ctrl *StudentExamAttemptController) StartAttempt(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.StartAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var attempt model.StudentExamAttemptModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var exam examModel.ExamModel
		if err := tx.
			Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
			First(&exam, "exam_id = ?", body.StudentExamAttemptExamID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		if exam.ExamStatus != "published" {
			return fiber.NewError(fiber.StatusForbidden, "Exam is not published")
		}

		attemptLimit := exam.ExamAttemptLimit
		if body.StudentExamAttemptAssignmentID != nil {
			var assignment assignmentModel.ClassExamAssignmentModel
			if err := tx.
				Where("class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", academyID).
				First(&assignment, "class_exam_assignment_id = ?", *body.StudentExamAttemptAssignmentID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Assignment not found")
			}
			now := time.Now()
			if assignment.ClassExamAssignmentAvailableFrom != nil && now.Before(*assignment.ClassExamAssignmentAvailableFrom) {
				return fiber.NewError(fiber.StatusForbidden, "Exam is not yet available")
			}
			if assignment.ClassExamAssignmentAvailableUntil != nil && now.After(*assignment.ClassExamAssignmentAvailableUntil) {
				return fiber.NewError(fiber.StatusForbidden, "Exam is no longer available")
			}
			if len(assignment.ClassExamAssignmentConfig) > 0 {
				var ov assignmentOverrides
				if err := sonic.Unmarshal(assignment.ClassExamAssignmentConfig, &ov); err == nil && ov.MaxAttempts != nil {
					attemptLimit = ov.MaxAttempts
				}
			}
		}

		var open int64
		if err := tx.Model(&model.StudentExamAttemptModel{}).
			Where(`student_exam_attempt_academy_id = ?
				AND student_exam_attempt_student_id = ?
				AND student_exam_attempt_exam_id = ?
				AND student_exam_attempt_status = ?
				AND student_exam_attempt_deleted_at IS NULL`,
				academyID, studentID, body.StudentExamAttemptExamID, model.AttemptStatusInProgress).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return fiber.NewError(fiber.StatusConflict, "An attempt is already in progress for this exam")
		}

		var maxNumber *int
		if err := tx.Model(&model.StudentExamAttemptModel{}).
			Select("MAX(student_exam_attempt_number)").
			Where(`student_exam_attempt_academy_id = ?
				AND student_exam_attempt_student_id = ?
				AND student_exam_attempt_exam_id = ?
				AND student_exam_attempt_deleted_at IS NULL`,
				academyID, studentID, body.StudentExamAttemptExamID).
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		number := 1
		if maxNumber != nil {
			number = *maxNumber + 1
		}
		if attemptLimit != nil && number > *attemptLimit {
			return fiber.NewError(fiber.StatusForbidden, "Attempt limit reached for this exam")
		}

		attempt = model.StudentExamAttemptModel{
			StudentExamAttemptAcademyID:    academyID,
			StudentExamAttemptStudentID:    studentID,
			StudentExamAttemptExamID:       body.StudentExamAttemptExamID,
			StudentExamAttemptAssignmentID: body.StudentExamAttemptAssignmentID,
			StudentExamAttemptSessionID:    body.StudentExamAttemptSessionID,
			StudentExamAttemptNumber:       number,
			StudentExamAttemptStatus:       model.AttemptStatusInProgress,
			StudentExamAttemptMaxScore:     exam.ExamTotalPoints,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		return sessionService.RecomputeSessionStats(tx, academyID, attempt.StudentExamAttemptSessionID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to start attempt")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt started", dto.ToStudentExamAttemptDTO(attempt))
}

func (ctrl *StudentExamAttemptController) findOwnAttempt(tx *gorm.DB, academyID, studentID uuid.UUID, id string) (*model.StudentExamAttemptModel, error) {
	var attempt model.StudentExamAttemptModel
	if err := tx.
		Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_student_id = ? AND student_exam_attempt_deleted_at IS NULL",
			academyID, studentID).
		First(&attempt, "student_exam_attempt_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Attempt not found")
	}
	return &attempt, nil
}

// =============================
// ✏️ Auto-save Answer (upsert per question, rescore after)
// =============================
func (ctrl *StudentExamAttemptController) SaveAnswer(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SaveAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var answer model.StudentAnswerModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		attempt, err := ctrl.findOwnAttempt(tx, academyID, studentID, c.Params("attempt_id"))
		if err != nil {
			return err
		}
		if attempt.StudentExamAttemptStatus != model.AttemptStatusInProgress {
			return fiber.NewError(fiber.StatusConflict, "Attempt is no longer in progress")
		}

		var question questionModel.QuestionModel
		if err := tx.
			Where("question_academy_id = ? AND question_exam_id = ? AND question_deleted_at IS NULL",
				academyID, attempt.StudentExamAttemptExamID).
			First(&question, "question_id = ?", body.StudentAnswerQuestionID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Question does not belong to this exam")
		}

		points, isCorrect := service.AutoGrade(&question, body.StudentAnswerPayload)

		findErr := tx.
			Where(`student_answer_academy_id = ?
				AND student_answer_attempt_id = ?
				AND student_answer_question_id = ?
				AND student_answer_deleted_at IS NULL`,
				academyID, attempt.StudentExamAttemptID, body.StudentAnswerQuestionID).
			First(&answer).Error
		switch {
		case findErr == nil:
			now := time.Now()
			if err := tx.Model(&answer).Updates(map[string]any{
				"student_answer_payload":       body.StudentAnswerPayload,
				"student_answer_points_earned": points,
				"student_answer_is_correct":    isCorrect,
				"student_answer_updated_at":    &now,
			}).Error; err != nil {
				return err
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			answer = model.StudentAnswerModel{
				StudentAnswerAcademyID:    academyID,
				StudentAnswerAttemptID:    attempt.StudentExamAttemptID,
				StudentAnswerQuestionID:   body.StudentAnswerQuestionID,
				StudentAnswerPayload:      body.StudentAnswerPayload,
				StudentAnswerPointsEarned: points,
				StudentAnswerIsCorrect:    isCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		if _, err := service.RescoreAttempt(tx, academyID, attempt); err != nil {
			return err
		}
		return sessionService.RecomputeSessionStats(tx, academyID, attempt.StudentExamAttemptSessionID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save answer")
	}

	return helper.Success(c, "Answer saved", dto.ToStudentAnswerDTO(answer))
}

// finishAttempt moves an in_progress attempt to a terminal state,
// rescoring on the way out.
func (ctrl *StudentExamAttemptController) finishAttempt(c *fiber.Ctx, toStatus string, message string) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var attempt *model.StudentExamAttemptModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		attempt, err = ctrl.findOwnAttempt(tx, academyID, studentID, c.Params("id"))
		if err != nil {
			return err
		}
		if err := service.ValidateAttemptTransition(attempt.StudentExamAttemptStatus, toStatus); err != nil {
			if errors.Is(err, service.ErrInvalidAttemptTransition) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return err
		}

		// abandoned attempts were never handed in, so no submitted_at
		now := time.Now()
		updates := map[string]any{
			"student_exam_attempt_status":     toStatus,
			"student_exam_attempt_updated_at": &now,
		}
		if toStatus != model.AttemptStatusAbandoned {
			updates["student_exam_attempt_submitted_at"] = &now
		}
		if err := tx.Model(attempt).Updates(updates).Error; err != nil {
			return err
		}
		attempt.StudentExamAttemptStatus = toStatus
		if toStatus != model.AttemptStatusAbandoned {
			attempt.StudentExamAttemptSubmittedAt = &now
		}

		if _, err := service.RescoreAttempt(tx, academyID, attempt); err != nil {
			return err
		}
		return sessionService.RecomputeSessionStats(tx, academyID, attempt.StudentExamAttemptSessionID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to finish attempt")
	}

	return helper.Success(c, message, dto.ToStudentExamAttemptDTO(*attempt))
}

// =============================
// ✏️ Submit Attempt
// =============================
func (ctrl *StudentExamAttemptController) SubmitAttempt(c *fiber.Ctx) error {
	return ctrl.finishAttempt(c, model.AttemptStatusSubmitted, "Attempt submitted")
}

// =============================
// ✏️ Abandon Attempt
// =============================
func (ctrl *StudentExamAttemptController) AbandonAttempt(c *fiber.Ctx) error {
	return ctrl.finishAttempt(c, model.AttemptStatusAbandoned, "Attempt abandoned")
}

// =============================
// 📄 My Attempts (student)
// =============================
func (ctrl *StudentExamAttemptController) GetMyAttempts(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.StudentExamAttemptModel{}).
		Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_student_id = ? AND student_exam_attempt_deleted_at IS NULL",
			academyID, studentID)
	if examID := c.Query("exam_id"); examID != "" {
		q = q.Where("student_exam_attempt_exam_id = ?", examID)
	}

	var rows []model.StudentExamAttemptModel
	if err := q.Order("student_exam_attempt_started_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	out := make([]dto.StudentExamAttemptDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStudentExamAttemptDTO(r))
	}

	return c.JSON(fiber.Map{"data": out})
}

// =============================
// 📄 Attempt Answers (student)
// =============================
func (ctrl *StudentExamAttemptController) GetAttemptAnswers(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	attempt, err := ctrl.findOwnAttempt(ctrl.DB, academyID, studentID, c.Params("attempt_id"))
	if err != nil {
		return err
	}

	var rows []model.StudentAnswerModel
	if err := ctrl.DB.
		Where("student_answer_academy_id = ? AND student_answer_attempt_id = ? AND student_answer_deleted_at IS NULL",
			academyID, attempt.StudentExamAttemptID).
		Order("student_answer_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch answers")
	}

	out := make([]dto.StudentAnswerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStudentAnswerDTO(r))
	}

	return c.JSON(fiber.Map{
		"attempt": dto.ToStudentExamAttemptDTO(*attempt),
		"data":    out,
	})
}
