package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academylms_backend/internals/features/users/users/dto"
	"academylms_backend/internals/features/users/users/model"
	helper "academylms_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create User (academy from token)
// =============================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	// email unique per academy among live rows
	var cnt int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_academy_id = ? AND lower(user_email) = ? AND user_deleted_at IS NULL", academyID, email).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email already registered in this academy")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserAcademyID:    academyID,
		UserName:         body.UserName,
		UserEmail:        email,
		UserRole:         body.UserRole,
		UserPasswordHash: string(hash),
		UserIsActive:     true,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.ToUserDTO(user))
}

// =============================
// 📄 List Users (per academy)
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "user_created_at",
		"name":       "user_name",
		"email":      "user_email",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.UserModel{}).
		Where("user_academy_id = ? AND user_deleted_at IS NULL", academyID)

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	out := make([]dto.UserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToUserDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get User By ID
// =============================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.
		Where("user_academy_id = ? AND user_deleted_at IS NULL", academyID).
		First(&user, "user_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return c.JSON(dto.ToUserDTO(user))
}

// =============================
// ✏️ Update User
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.
		Where("user_academy_id = ? AND user_deleted_at IS NULL", academyID).
		First(&user, "user_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	updates := map[string]any{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.UserEmail != nil {
		updates["user_email"] = strings.ToLower(strings.TrimSpace(*body.UserEmail))
	}
	if body.UserRole != nil {
		updates["user_role"] = *body.UserRole
	}
	if body.UserIsActive != nil {
		updates["user_is_active"] = *body.UserIsActive
	}
	if body.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["user_password_hash"] = string(hash)
	}
	now := time.Now()
	updates["user_updated_at"] = &now

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.Success(c, "User updated", dto.ToUserDTO(user))
}

// =============================
// ❌ Soft-delete User
// =============================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ? AND user_academy_id = ? AND user_deleted_at IS NULL", id, academyID).
		Updates(map[string]any{
			"user_deleted_at": &now,
			"user_is_active":  false,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "User deleted", nil)
}
