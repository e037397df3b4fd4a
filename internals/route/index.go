package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/configs"
	"academylms_backend/internals/middlewares/auth"

	attendanceRoute "academylms_backend/internals/features/academics/attendance/route"
	classRoute "academylms_backend/internals/features/academics/classes/route"
	enrollmentRoute "academylms_backend/internals/features/academics/enrollments/route"
	studentRoute "academylms_backend/internals/features/academics/students/route"
	teacherRoute "academylms_backend/internals/features/academics/teachers/route"
	academyRoute "academylms_backend/internals/features/academies/academies/route"
	mappingRoute "academylms_backend/internals/features/curriculum/mappings/route"
	nodeRoute "academylms_backend/internals/features/curriculum/nodes/route"
	settingsRoute "academylms_backend/internals/features/curriculum/settings/route"
	assignmentRoute "academylms_backend/internals/features/exams/assignments/route"
	attemptRoute "academylms_backend/internals/features/exams/attempts/route"
	examRoute "academylms_backend/internals/features/exams/exams/route"
	questionRoute "academylms_backend/internals/features/exams/questions/route"
	sessionRoute "academylms_backend/internals/features/exams/sessions/route"
	userRoute "academylms_backend/internals/features/users/users/route"
)

// SetupRoutes mounts the three surfaces:
//
//	/api/p - public, no token
//	/api/u - any authenticated user (test-taking)
//	/api/a - academy staff (admin, or teacher where routes allow)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 public
	public := api.Group("/p")
	academyRoute.AcademyPublicRoutes(public, db)

	// 👤 authenticated user
	user := api.Group("/u",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)
	questionRoute.QuestionUserRoutes(user, db)
	attemptRoute.AttemptUserRoutes(user, db)

	// 🛡️ academy staff
	admin := api.Group("/a",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret}),
		auth.IsAcademyStaff(),
	)
	academyRoute.AcademyAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	settingsRoute.CurriculumSettingsAdminRoutes(admin, db)
	nodeRoute.CurriculumNodeAdminRoutes(admin, db)
	mappingRoute.CurriculumExamMappingAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
	assignmentRoute.ClassExamAssignmentAdminRoutes(admin, db)
	sessionRoute.ExamSessionAdminRoutes(admin, db)
	attemptRoute.AttemptAdminRoutes(admin, db)
}
