package adminRoutes

import (
	authControllers "lms/controllers/auth"
	controllers "lms/controllers/course"
	superAdminController "lms/controllers/superAdmin"
	"lms/middleware"
	authValidators "lms/validators/auth"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up registration/login and all admin management
// routes. Everything past login runs behind the JWT check and the admin
// role gate.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Post("/register", authValidators.AdminCredentialsValidator(), authControllers.AdminRegister)
	adminGroup.Post("/login", authValidators.AdminCredentialsValidator(), authControllers.AdminLogin)

	// Everything registered below requires a valid token and the admin role
	adminGroup.Use(middleware.JWTMiddleware, middleware.AdminOnly())
	admin := adminGroup

	// Course CRUD
	admin.Post("/createCourse", validators.CreateCourse(), controllers.AdminCreateCourse)
	admin.Get("/getallcourses", controllers.AdminGetAllCourses)
	admin.Get("/getCourseById/:id", validators.CourseByID(), controllers.AdminGetCourseByID)
	admin.Put("/updateCourseById/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	admin.Delete("/deleteCourseById/:id", validators.CourseByID(), controllers.AdminDeleteCourse)

	// Module management
	admin.Post("/course/:courseId/createModuleUnderCourse", validators.CreateModule(), controllers.AdminCreateModule)
	admin.Get("/course/:courseId/getModulesUnderCourse", validators.CourseParams(), controllers.AdminGetModules)
	admin.Put("/course/:courseId/module/updateModuleUnderCourse/:moduleId", validators.UpdateModule(), controllers.AdminUpdateModule)
	admin.Delete("/course/:courseId/module/deleteModuleUnderCourse/:moduleId", validators.ModuleParams(), controllers.AdminDeleteModule)

	// Lesson management
	admin.Post("/course/:courseId/module/:moduleId/createLessonUnderModule", validators.CreateLesson(), controllers.AdminCreateLesson)
	admin.Get("/course/:courseId/module/:moduleId/getAllLessonsUnderModule", validators.ModuleParams(), controllers.AdminGetLessons)
	admin.Put("/course/:courseId/module/:moduleId/lesson/updateLessonUnderModule/:lessonId", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	admin.Delete("/course/:courseId/module/:moduleId/lesson/deleteLessonUnderModule/:lessonId", validators.LessonParams(), controllers.AdminDeleteLesson)

	// User directory & assignment
	admin.Get("/getAllUsers", superAdminController.GetAllUsers)
	admin.Delete("/deleteUserById/:userId", validators.UserParams(), superAdminController.DeleteUserById)
	admin.Post("/assignCourseToUser", validators.AssignCourse(), controllers.AssignCourseToUser)
	admin.Delete("/:userId/removeCourseFromUser/:courseId", validators.RemoveCourseParams(), controllers.RemoveCourseFromUser)
}
