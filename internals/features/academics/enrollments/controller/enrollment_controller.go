package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/enrollments/dto"
	"academylms_backend/internals/features/academics/enrollments/model"
	helper "academylms_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Enroll Student into Class
// =============================
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.EnrollmentModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_academy_id = ? AND enrollment_student_id = ? AND enrollment_class_id = ? AND enrollment_status = 'active' AND enrollment_deleted_at IS NULL",
				academyID, body.EnrollmentStudentID, body.EnrollmentClassID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Student already enrolled in this class")
		}

		row = model.EnrollmentModel{
			EnrollmentAcademyID: academyID,
			EnrollmentStudentID: body.EnrollmentStudentID,
			EnrollmentClassID:   body.EnrollmentClassID,
			EnrollmentStatus:    "active",
		}
		return tx.Create(&row).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll student")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student enrolled", dto.ToEnrollmentDTO(row))
}

// =============================
// 📄 List Enrollments (filter by class/student)
// =============================
func (ctrl *EnrollmentController) GetEnrollmentsFiltered(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_academy_id = ? AND enrollment_deleted_at IS NULL", academyID)

	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("enrollment_class_id = ?", classID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("enrollment_student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_joined_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	out := make([]dto.EnrollmentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToEnrollmentDTO(r))
	}
	return c.JSON(out)
}

// =============================
// ✏️ Update Enrollment Status
// =============================
func (ctrl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_academy_id = ? AND enrollment_deleted_at IS NULL", academyID).
		First(&row, "enrollment_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	updates := map[string]any{}
	now := time.Now()
	if body.EnrollmentStatus != nil {
		updates["enrollment_status"] = *body.EnrollmentStatus
		// leaving the class closes the enrollment window
		if *body.EnrollmentStatus != "active" && row.EnrollmentLeftAt == nil {
			updates["enrollment_left_at"] = &now
		}
	}
	updates["enrollment_updated_at"] = &now

	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return helper.Success(c, "Enrollment updated", dto.ToEnrollmentDTO(row))
}

// =============================
// ❌ Soft-delete Enrollment
// =============================
func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_academy_id = ? AND enrollment_deleted_at IS NULL", id, academyID).
		Update("enrollment_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	return helper.Success(c, "Enrollment deleted", nil)
}
