package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func autoSaveApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Get("X-Student"); sid != "" {
			c.Locals("student_id", sid)
		}
		return c.Next()
	})
	app.Put("/answers", AutoSaveRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func saveAs(t *testing.T, app *fiber.App, student string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", "/answers", nil)
	if student != "" {
		req.Header.Set("X-Student", student)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// Two students on the same IP each get their own auto-save budget.
func TestAutoSaveRateLimiterKeyedPerStudent(t *testing.T) {
	app := autoSaveApp()

	for i := 0; i < 60; i++ {
		if code := saveAs(t, app, "student-a"); code != fiber.StatusOK {
			t.Fatalf("student A save %d: status %d, want 200", i+1, code)
		}
	}
	if code := saveAs(t, app, "student-a"); code != fiber.StatusTooManyRequests {
		t.Fatalf("student A over budget: status %d, want 429", code)
	}
	if code := saveAs(t, app, "student-b"); code != fiber.StatusOK {
		t.Fatalf("student B throttled by student A: status %d, want 200", code)
	}
}

func TestAutoSaveRateLimiterFallsBackToIP(t *testing.T) {
	app := autoSaveApp()

	for i := 0; i < 60; i++ {
		if code := saveAs(t, app, ""); code != fiber.StatusOK {
			t.Fatalf("anonymous save %d: status %d, want 200", i+1, code)
		}
	}
	if code := saveAs(t, app, ""); code != fiber.StatusTooManyRequests {
		t.Fatalf("anonymous over budget: status %d, want 429", code)
	}
}
