package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academylms_backend/internals/features/exams/exams/dto"
	"academylms_backend/internals/features/exams/exams/model"
	helper "academylms_backend/internals/helpers"
)

type ExamFileController struct {
	DB *gorm.DB
}

func NewExamFileController(db *gorm.DB) *ExamFileController {
	return &ExamFileController{DB: db}
}

func (ctrl *ExamFileController) findExam(academyID uuid.UUID, examID string) (*model.ExamModel, error) {
	var exam model.ExamModel
	if err := ctrl.DB.
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	return &exam, nil
}

// =============================
// ➕ Attach File to Exam
// =============================
func (ctrl *ExamFileController) CreateExamFile(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	exam, err := ctrl.findExam(academyID, c.Params("exam_id"))
	if err != nil {
		return err
	}

	var body dto.CreateExamFileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	file := model.ExamFileModel{
		ExamFileAcademyID:     academyID,
		ExamFileExamID:        exam.ExamID,
		ExamFileName:          body.ExamFileName,
		ExamFileKind:          body.ExamFileKind,
		ExamFileURL:           body.ExamFileURL,
		ExamFileDisplayConfig: body.ExamFileDisplayConfig,
	}
	if body.ExamFileSortOrder != nil {
		file.ExamFileSortOrder = *body.ExamFileSortOrder
	}

	if err := ctrl.DB.Create(&file).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to attach exam file")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam file attached", dto.ToExamFileDTO(file))
}

// =============================
// 📄 List Exam Files
// =============================
func (ctrl *ExamFileController) GetExamFiles(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	exam, err := ctrl.findExam(academyID, c.Params("exam_id"))
	if err != nil {
		return err
	}

	var rows []model.ExamFileModel
	if err := ctrl.DB.
		Where("exam_file_academy_id = ? AND exam_file_exam_id = ? AND exam_file_deleted_at IS NULL", academyID, exam.ExamID).
		Order("exam_file_sort_order ASC, exam_file_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam files")
	}

	out := make([]dto.ExamFileDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToExamFileDTO(r))
	}

	return c.JSON(fiber.Map{"data": out})
}

// =============================
// ✏️ Update Exam File (incl. display config)
// =============================
func (ctrl *ExamFileController) UpdateExamFile(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateExamFileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var file model.ExamFileModel
	if err := ctrl.DB.
		Where("exam_file_academy_id = ? AND exam_file_deleted_at IS NULL", academyID).
		First(&file, "exam_file_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam file not found")
	}

	updates := map[string]any{}
	if body.ExamFileName != nil {
		updates["exam_file_name"] = *body.ExamFileName
	}
	if body.ExamFileKind != nil {
		updates["exam_file_kind"] = *body.ExamFileKind
	}
	if body.ExamFileURL != nil {
		updates["exam_file_url"] = *body.ExamFileURL
	}
	if body.ExamFileSortOrder != nil {
		updates["exam_file_sort_order"] = *body.ExamFileSortOrder
	}
	if body.ExamFileDisplayConfig != nil {
		updates["exam_file_display_config"] = body.ExamFileDisplayConfig
	}
	now := time.Now()
	updates["exam_file_updated_at"] = &now

	if err := ctrl.DB.Model(&file).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam file")
	}

	return helper.Success(c, "Exam file updated", dto.ToExamFileDTO(file))
}

// =============================
// ❌ Detach Exam File
// =============================
func (ctrl *ExamFileController) DeleteExamFile(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.ExamFileModel{}).
		Where("exam_file_id = ? AND exam_file_academy_id = ? AND exam_file_deleted_at IS NULL", id, academyID).
		Update("exam_file_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam file")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam file not found")
	}

	return helper.Success(c, "Exam file deleted", nil)
}
