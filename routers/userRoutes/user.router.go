package userRoutes

import (
	authControllers "lms/controllers/auth"
	controllers "lms/controllers/course"
	"lms/middleware"
	authValidators "lms/validators/auth"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user registration/login and the read paths into
// assigned course content.
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/user")

	userGroup.Post("/userregister", authValidators.UserRegister(), authControllers.UserRegister)
	userGroup.Post("/userlogin", authValidators.UserLogin(), authControllers.UserLogin)
	userGroup.Post("/userlogout", middleware.JWTMiddleware, authControllers.UserLogout)

	userGroup.Get("/:userId/getAssignedCourses",
		middleware.JWTMiddleware, validators.UserParams(), controllers.GetAssignedCourses)
	userGroup.Get("/:userId/course/:courseId/getModulesUnderAssignedCourse",
		middleware.JWTMiddleware, validators.UserCourseParams(), controllers.GetModulesUnderAssignedCourse)
	userGroup.Get("/:userId/course/:courseId/module/:moduleId/getLessonsUnderModule",
		middleware.JWTMiddleware, validators.UserLessonParams(), controllers.GetLessonsUnderModule)
}
