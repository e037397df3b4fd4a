package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"academylms_backend/internals/features/exams/exams/dto"
	"academylms_backend/internals/features/exams/exams/model"
	helper "academylms_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Exam (always starts as draft)
// =============================
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	exam := model.ExamModel{
		ExamAcademyID:       academyID,
		ExamTitle:           body.ExamTitle,
		ExamDescription:     body.ExamDescription,
		ExamType:            body.ExamType,
		ExamPassingScore:    body.ExamPassingScore,
		ExamDurationMinutes: body.ExamDurationMinutes,
		ExamAttemptLimit:    body.ExamAttemptLimit,
		ExamTags:            pq.StringArray(body.ExamTags),
		ExamStatus:          "draft",
	}
	if body.ExamShuffleQuestions != nil {
		exam.ExamShuffleQuestions = *body.ExamShuffleQuestions
	}

	if err := ctrl.DB.Create(&exam).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created", dto.ToExamDTO(exam))
}

// =============================
// 📄 List Exams
// =============================
func (ctrl *ExamController) GetAllExams(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "exam_created_at",
		"title":      "exam_title",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID)

	if status := c.Query("status"); status != "" {
		q = q.Where("exam_status = ?", status)
	}
	if etype := c.Query("type"); etype != "" {
		q = q.Where("exam_type = ?", etype)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(exam_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count exams")
	}

	var rows []model.ExamModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	out := make([]dto.ExamDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToExamDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Exam By ID
// =============================
func (ctrl *ExamController) GetExamByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var exam model.ExamModel
	if err := ctrl.DB.
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	return c.JSON(dto.ToExamDTO(exam))
}

// =============================
// ✏️ Update Exam (includes status: draft|published|archived)
// =============================
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var exam model.ExamModel
	if err := ctrl.DB.
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	// archived exams are frozen; only un-archiving is allowed
	if exam.ExamStatus == "archived" &&
		(body.ExamStatus == nil || *body.ExamStatus == "archived") {
		return fiber.NewError(fiber.StatusConflict, "Archived exam cannot be modified")
	}

	updates := map[string]any{}
	if body.ExamTitle != nil {
		updates["exam_title"] = *body.ExamTitle
	}
	if body.ExamDescription != nil {
		updates["exam_description"] = *body.ExamDescription
	}
	if body.ExamType != nil {
		updates["exam_type"] = *body.ExamType
	}
	if body.ExamPassingScore != nil {
		updates["exam_passing_score"] = *body.ExamPassingScore
	}
	if body.ExamDurationMinutes != nil {
		updates["exam_duration_minutes"] = *body.ExamDurationMinutes
	}
	if body.ExamAttemptLimit != nil {
		updates["exam_attempt_limit"] = *body.ExamAttemptLimit
	}
	if body.ExamShuffleQuestions != nil {
		updates["exam_shuffle_questions"] = *body.ExamShuffleQuestions
	}
	if body.ExamTags != nil {
		updates["exam_tags"] = pq.StringArray(body.ExamTags)
	}
	if body.ExamStatus != nil {
		updates["exam_status"] = *body.ExamStatus
	}
	now := time.Now()
	updates["exam_updated_at"] = &now

	if err := ctrl.DB.Model(&exam).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam")
	}

	return helper.Success(c, "Exam updated", dto.ToExamDTO(exam))
}

// =============================
// ❌ Soft-delete Exam
// =============================
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_id = ? AND exam_academy_id = ? AND exam_deleted_at IS NULL", id, academyID).
		Update("exam_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	return helper.Success(c, "Exam deleted", nil)
}
