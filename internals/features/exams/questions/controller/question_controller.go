package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "academylms_backend/internals/features/exams/exams/model"
	"academylms_backend/internals/features/exams/questions/dto"
	"academylms_backend/internals/features/exams/questions/model"
	helper "academylms_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

var validate = validator.New()

func findExamTx(tx *gorm.DB, academyID uuid.UUID, examID string) (*examModel.ExamModel, error) {
	var exam examModel.ExamModel
	if err := tx.
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	return &exam, nil
}

// syncExamTotalPoints keeps exam_total_points equal to the sum of live
// question points. Runs inside the caller's transaction.
func syncExamTotalPoints(tx *gorm.DB, academyID, examID uuid.UUID) error {
	var total float64
	if err := tx.Model(&model.QuestionModel{}).
		Select("COALESCE(SUM(question_points), 0)").
		Where("question_academy_id = ? AND question_exam_id = ? AND question_deleted_at IS NULL", academyID, examID).
		Scan(&total).Error; err != nil {
		return err
	}
	now := time.Now()
	return tx.Model(&examModel.ExamModel{}).
		Where("exam_id = ?", examID).
		Updates(map[string]any{
			"exam_total_points": total,
			"exam_updated_at":   &now,
		}).Error
}

// =============================
// ➕ Create Question
// =============================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		exam, err := findExamTx(tx, academyID, c.Params("exam_id"))
		if err != nil {
			return err
		}
		if exam.ExamStatus == "archived" {
			return fiber.NewError(fiber.StatusConflict, "Archived exam cannot be modified")
		}

		number := 0
		if body.QuestionNumber != nil {
			number = *body.QuestionNumber
		} else {
			var maxNumber *int
			if err := tx.Model(&model.QuestionModel{}).
				Select("MAX(question_number)").
				Where("question_academy_id = ? AND question_exam_id = ? AND question_deleted_at IS NULL", academyID, exam.ExamID).
				Scan(&maxNumber).Error; err != nil {
				return err
			}
			number = 1
			if maxNumber != nil {
				number = *maxNumber + 1
			}
		}

		points := 1.0
		if body.QuestionPoints != nil {
			points = *body.QuestionPoints
		}

		question = model.QuestionModel{
			QuestionAcademyID: academyID,
			QuestionExamID:    exam.ExamID,
			QuestionNumber:    number,
			QuestionType:      body.QuestionType,
			QuestionPrompt:    body.QuestionPrompt,
			QuestionOptions:   body.QuestionOptions,
			QuestionAnswerKey: body.QuestionAnswerKey,
			QuestionPoints:    points,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return syncExamTotalPoints(tx, academyID, exam.ExamID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", dto.ToQuestionDTO(question))
}

// =============================
// 📄 List Questions (admin view, answer keys included)
// =============================
func (ctrl *QuestionController) GetExamQuestions(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	exam, err := findExamTx(ctrl.DB, academyID, c.Params("exam_id"))
	if err != nil {
		return err
	}

	var rows []model.QuestionModel
	if err := ctrl.DB.
		Where("question_academy_id = ? AND question_exam_id = ? AND question_deleted_at IS NULL", academyID, exam.ExamID).
		Order("question_number ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	out := make([]dto.QuestionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToQuestionDTO(r))
	}

	return c.JSON(fiber.Map{"data": out})
}

// =============================
// 📄 List Questions for Test-taking (answer keys stripped)
// =============================
func (ctrl *QuestionController) GetExamQuestionsForStudent(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	exam, err := findExamTx(ctrl.DB, academyID, c.Params("exam_id"))
	if err != nil {
		return err
	}
	if exam.ExamStatus != "published" {
		return fiber.NewError(fiber.StatusForbidden, "Exam is not published")
	}

	var rows []model.QuestionModel
	if err := ctrl.DB.
		Where("question_academy_id = ? AND question_exam_id = ? AND question_deleted_at IS NULL", academyID, exam.ExamID).
		Order("question_number ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	out := make([]dto.StudentQuestionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStudentQuestionDTO(r))
	}

	return c.JSON(fiber.Map{"data": out})
}

// =============================
// ✏️ Update Question
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("question_academy_id = ? AND question_deleted_at IS NULL", academyID).
			First(&question, "question_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}

		updates := map[string]any{}
		if body.QuestionNumber != nil {
			updates["question_number"] = *body.QuestionNumber
		}
		if body.QuestionType != nil {
			updates["question_type"] = *body.QuestionType
		}
		if body.QuestionPrompt != nil {
			updates["question_prompt"] = *body.QuestionPrompt
		}
		if body.QuestionOptions != nil {
			updates["question_options"] = body.QuestionOptions
		}
		if body.QuestionAnswerKey != nil {
			updates["question_answer_key"] = *body.QuestionAnswerKey
		}
		if body.QuestionPoints != nil {
			updates["question_points"] = *body.QuestionPoints
		}
		now := time.Now()
		updates["question_updated_at"] = &now

		if err := tx.Model(&question).Updates(updates).Error; err != nil {
			return err
		}
		if body.QuestionPoints != nil {
			return syncExamTotalPoints(tx, academyID, question.QuestionExamID)
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.Success(c, "Question updated", dto.ToQuestionDTO(question))
}

// =============================
// ❌ Soft-delete Question
// =============================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var question model.QuestionModel
		if err := tx.
			Where("question_academy_id = ? AND question_deleted_at IS NULL", academyID).
			First(&question, "question_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		now := time.Now()
		if err := tx.Model(&question).
			Update("question_deleted_at", &now).Error; err != nil {
			return err
		}
		return syncExamTotalPoints(tx, academyID, question.QuestionExamID)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}

	return helper.Success(c, "Question deleted", nil)
}
