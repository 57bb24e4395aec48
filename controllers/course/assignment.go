package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AssignCourseToUser grants a user read access to a course. A second
// assignment of the same pair is rejected with Conflict and never
// duplicates the id.
func AssignCourseToUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssign").(*courseValidator.AssignRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND role = ?", reqData.UserID, "user").First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	var course courseModels.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if containsID(user.AssignedCourses, reqData.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already assigned to the user", nil)
	}

	user.AssignedCourses = append(user.AssignedCourses, reqData.CourseID)
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course assigned to user successfully", fiber.Map{
		"user": user,
	})
}

// RemoveCourseFromUser revokes a previously assigned course
func RemoveCourseFromUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND role = ?", userID, "user").First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	if !containsID(user.AssignedCourses, courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not assigned to this user", nil)
	}

	user.AssignedCourses = removeID(user.AssignedCourses, courseID)
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from user successfully", fiber.Map{
		"user": user,
	})
}
