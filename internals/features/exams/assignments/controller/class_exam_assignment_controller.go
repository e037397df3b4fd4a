package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "academylms_backend/internals/features/academics/classes/model"
	"academylms_backend/internals/features/exams/assignments/dto"
	"academylms_backend/internals/features/exams/assignments/model"
	examModel "academylms_backend/internals/features/exams/exams/model"
	helper "academylms_backend/internals/helpers"
)

type ClassExamAssignmentController struct {
	DB *gorm.DB
}

func NewClassExamAssignmentController(db *gorm.DB) *ClassExamAssignmentController {
	return &ClassExamAssignmentController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Assign Exam to Class (duplicates allowed -> retakes)
// =============================
func (ctrl *ClassExamAssignmentController) CreateAssignment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	var body dto.CreateClassExamAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.ClassExamAssignmentAvailableFrom != nil && body.ClassExamAssignmentAvailableUntil != nil &&
		body.ClassExamAssignmentAvailableFrom.After(*body.ClassExamAssignmentAvailableUntil) {
		return fiber.NewError(fiber.StatusBadRequest, "available_from must be before available_until")
	}

	var class classModel.ClassModel
	if err := ctrl.DB.
		Where("class_academy_id = ? AND class_deleted_at IS NULL", academyID).
		First(&class, "class_id = ?", body.ClassExamAssignmentClassID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Class not found")
	}
	var exam examModel.ExamModel
	if err := ctrl.DB.
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", body.ClassExamAssignmentExamID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Exam not found")
	}
	if exam.ExamStatus != "published" {
		return fiber.NewError(fiber.StatusConflict, "Only published exams can be assigned")
	}

	assignment := model.ClassExamAssignmentModel{
		ClassExamAssignmentAcademyID:      academyID,
		ClassExamAssignmentClassID:        body.ClassExamAssignmentClassID,
		ClassExamAssignmentExamID:         body.ClassExamAssignmentExamID,
		ClassExamAssignmentTeacherID:      body.ClassExamAssignmentTeacherID,
		ClassExamAssignmentDueAt:          body.ClassExamAssignmentDueAt,
		ClassExamAssignmentAvailableFrom:  body.ClassExamAssignmentAvailableFrom,
		ClassExamAssignmentAvailableUntil: body.ClassExamAssignmentAvailableUntil,
		ClassExamAssignmentConfig:         body.ClassExamAssignmentConfig,
		ClassExamAssignmentWeight:         body.ClassExamAssignmentWeight,
		ClassExamAssignmentCategory:       body.ClassExamAssignmentCategory,
	}
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign exam")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam assigned to class", dto.ToClassExamAssignmentDTO(assignment))
}

// =============================
// 📄 List Assignments (filter by class or exam)
// =============================
func (ctrl *ClassExamAssignmentController) GetAllAssignments(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "assigned_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"assigned_at": "class_exam_assignment_assigned_at",
		"due_at":      "class_exam_assignment_due_at",
	}, "assigned_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.ClassExamAssignmentModel{}).
		Where("class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", academyID)

	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("class_exam_assignment_class_id = ?", classID)
	}
	if examID := c.Query("exam_id"); examID != "" {
		q = q.Where("class_exam_assignment_exam_id = ?", examID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []model.ClassExamAssignmentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	out := make([]dto.ClassExamAssignmentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToClassExamAssignmentDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Assignment By ID
// =============================
func (ctrl *ClassExamAssignmentController) GetAssignmentByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var assignment model.ClassExamAssignmentModel
	if err := ctrl.DB.
		Where("class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", academyID).
		First(&assignment, "class_exam_assignment_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	return c.JSON(dto.ToClassExamAssignmentDTO(assignment))
}

// =============================
// ✏️ Update Assignment
// =============================
func (ctrl *ClassExamAssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateClassExamAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment model.ClassExamAssignmentModel
	if err := ctrl.DB.
		Where("class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", academyID).
		First(&assignment, "class_exam_assignment_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	updates := map[string]any{}
	if body.ClassExamAssignmentTeacherID != nil {
		updates["class_exam_assignment_teacher_id"] = *body.ClassExamAssignmentTeacherID
	}
	if body.ClassExamAssignmentDueAt != nil {
		updates["class_exam_assignment_due_at"] = *body.ClassExamAssignmentDueAt
	}
	if body.ClassExamAssignmentAvailableFrom != nil {
		updates["class_exam_assignment_available_from"] = *body.ClassExamAssignmentAvailableFrom
	}
	if body.ClassExamAssignmentAvailableUntil != nil {
		updates["class_exam_assignment_available_until"] = *body.ClassExamAssignmentAvailableUntil
	}
	if body.ClassExamAssignmentConfig != nil {
		updates["class_exam_assignment_config"] = body.ClassExamAssignmentConfig
	}
	if body.ClassExamAssignmentWeight != nil {
		updates["class_exam_assignment_weight"] = *body.ClassExamAssignmentWeight
	}
	if body.ClassExamAssignmentCategory != nil {
		updates["class_exam_assignment_category"] = *body.ClassExamAssignmentCategory
	}
	now := time.Now()
	updates["class_exam_assignment_updated_at"] = &now

	if err := ctrl.DB.Model(&assignment).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update assignment")
	}

	return helper.Success(c, "Assignment updated", dto.ToClassExamAssignmentDTO(assignment))
}

// =============================
// ❌ Soft-delete Assignment
// =============================
func (ctrl *ClassExamAssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromTokenPreferTeacher(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.ClassExamAssignmentModel{}).
		Where("class_exam_assignment_id = ? AND class_exam_assignment_academy_id = ? AND class_exam_assignment_deleted_at IS NULL", id, academyID).
		Update("class_exam_assignment_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	return helper.Success(c, "Assignment deleted", nil)
}
