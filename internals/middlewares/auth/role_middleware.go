package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole rejects the request unless the token role is in the
// allowed set. Owner passes everything.
func RequireRole(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "owner" {
			return c.Next()
		}
		if _, ok := set[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}

// IsAcademyAdmin shortcut for the /api/a group.
func IsAcademyAdmin() fiber.Handler {
	return RequireRole("admin")
}

// IsAcademyStaff allows admins and teachers.
func IsAcademyStaff() fiber.Handler {
	return RequireRole("admin", "teacher")
}
