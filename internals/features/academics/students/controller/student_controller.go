package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/students/dto"
	"academylms_backend/internals/features/academics/students/model"
	helper "academylms_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Student
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.StudentCode != nil && strings.TrimSpace(*body.StudentCode) != "" {
		var cnt int64
		if err := ctrl.DB.Model(&model.StudentModel{}).
			Where("student_academy_id = ? AND student_code = ? AND student_deleted_at IS NULL", academyID, *body.StudentCode).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check student code")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Student code already in use")
		}
	}

	student := model.StudentModel{
		StudentAcademyID:        academyID,
		StudentUserID:           body.StudentUserID,
		StudentName:             body.StudentName,
		StudentCode:             body.StudentCode,
		StudentGrade:            body.StudentGrade,
		StudentGuardianName:     body.StudentGuardianName,
		StudentGuardianPhone:    body.StudentGuardianPhone,
		StudentEnrollmentStatus: "active",
	}

	if err := ctrl.DB.Create(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", dto.ToStudentDTO(student))
}

// =============================
// 📄 List Students
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
		"grade":      "student_grade",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_academy_id = ? AND student_deleted_at IS NULL", academyID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("student_name ILIKE ? OR student_code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]dto.StudentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToStudentDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Student By ID
// =============================
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var student model.StudentModel
	if err := ctrl.DB.
		Where("student_academy_id = ? AND student_deleted_at IS NULL", academyID).
		First(&student, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(dto.ToStudentDTO(student))
}

// =============================
// ✏️ Update Student
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.
		Where("student_academy_id = ? AND student_deleted_at IS NULL", academyID).
		First(&student, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	updates := map[string]any{}
	if body.StudentName != nil {
		updates["student_name"] = *body.StudentName
	}
	if body.StudentCode != nil {
		updates["student_code"] = *body.StudentCode
	}
	if body.StudentGrade != nil {
		updates["student_grade"] = *body.StudentGrade
	}
	if body.StudentGuardianName != nil {
		updates["student_guardian_name"] = *body.StudentGuardianName
	}
	if body.StudentGuardianPhone != nil {
		updates["student_guardian_phone"] = *body.StudentGuardianPhone
	}
	if body.StudentEnrollmentStatus != nil {
		updates["student_enrollment_status"] = *body.StudentEnrollmentStatus
	}
	now := time.Now()
	updates["student_updated_at"] = &now

	if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.Success(c, "Student updated", dto.ToStudentDTO(student))
}

// =============================
// ❌ Soft-delete Student
// =============================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_academy_id = ? AND student_deleted_at IS NULL", id, academyID).
		Update("student_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Student deleted", nil)
}
