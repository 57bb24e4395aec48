package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// resolveSelfUser loads the user addressed by the path and rejects tokens
// belonging to someone else. Returns false with the response written on
// failure.
func resolveSelfUser(c *fiber.Ctx, userID uint) (*models.User, bool) {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return nil, false
	}
	if accountID != userID {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND role = ?", userID, "user").First(&user).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		return nil, false
	}

	return &user, true
}

// GetAssignedCourses expands a user's assignment list into full course
// records. An empty set is reported as not-found, the product's chosen
// empty state.
func GetAssignedCourses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, ok := resolveSelfUser(c, userID)
	if !ok {
		return nil
	}

	courses := make([]courseModels.Course, 0, len(user.AssignedCourses))
	for _, id := range user.AssignedCourses {
		var course courseModels.Course
		if err := database.Database.Db.First(&course, id).Error; err == nil {
			courses = append(courses, course)
		}
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No assigned courses found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assigned courses fetched successfully", fiber.Map{
		"courses": courses,
	})
}

// requireAssignedCourse resolves the course and checks the assignment
// relation. Existence failures are 404; an existing but unassigned course
// is 403 — the two are never conflated.
func requireAssignedCourse(c *fiber.Ctx, user *models.User, courseID uint) (*courseModels.Course, bool) {
	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		return nil, false
	}

	if !containsID(user.AssignedCourses, courseID) {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not assigned to this user", nil)
		return nil, false
	}

	return &course, true
}

// GetModulesUnderAssignedCourse lists modules of a course the user has
// been assigned
func GetModulesUnderAssignedCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)

	user, ok := resolveSelfUser(c, userID)
	if !ok {
		return nil
	}

	course, ok := requireAssignedCourse(c, user, courseID)
	if !ok {
		return nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules retrieved successfully", fiber.Map{
		"modules": expandModules(course.ModuleIDs),
	})
}

// GetLessonsUnderModule lists lessons of a module inside an assigned
// course, re-validating the parent chain at every level
func GetLessonsUnderModule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	user, ok := resolveSelfUser(c, userID)
	if !ok {
		return nil
	}

	course, ok := requireAssignedCourse(c, user, courseID)
	if !ok {
		return nil
	}

	var module courseModels.Module
	if err := database.Database.Db.First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
	}

	if module.CourseID != course.ID || !containsID(course.ModuleIDs, moduleID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module does not belong to this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons retrieved successfully", fiber.Map{
		"lessons": expandLessons(module.LessonIDs),
	})
}
