package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the `users` table. Account records only; token
// issuance/sessions are handled by a separate auth service.
type UserModel struct {
	UserID        uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserAcademyID uuid.UUID `json:"user_academy_id" gorm:"column:user_academy_id;type:uuid;not null;index"` // FK -> academies(academy_id)

	UserName  string `json:"user_name" gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(160);not null"`

	// owner | admin | teacher | student
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'student'"`

	UserPasswordHash string `json:"-" gorm:"column:user_password_hash;type:varchar(100);not null"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
	UserDeletedAt *time.Time `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at"`
}

func (UserModel) TableName() string {
	return "users"
}
