package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// small util so we don't duplicate locals parsing
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" not found in token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" empty in token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" empty in token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case interface{}:
		if s, ok := t.(string); ok {
			if strings.TrimSpace(s) == "" {
				return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" empty in token")
			}
			return uuid.Parse(strings.TrimSpace(s))
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key+" format in token")
}

// === ADMIN ===
func GetAcademyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "academy_admin_ids")
}

// === TEACHER ===
func GetTeacherAcademyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "academy_teacher_ids")
}

// Prefer TEACHER, fall back to ADMIN.
func GetAcademyIDFromTokenPreferTeacher(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := firstUUIDFromLocals(c, "academy_teacher_ids"); err == nil {
		return id, nil
	}
	return firstUUIDFromLocals(c, "academy_admin_ids")
}

// GetUserIDFromToken reads the user_id local set by the JWT middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id not found in token")
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id empty in token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user_id format in token")
	}
	return id, nil
}

// GetStudentIDFromToken reads the student_id local (student portal tokens).
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "student_id")
}
