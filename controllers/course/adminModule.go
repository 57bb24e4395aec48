package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateModule creates a module under a course. The module row and
// the course's module id list are written in one transaction so the two
// sides of the relation never diverge on success.
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		CourseID:  courseID,
		Title:     reqData.Title,
		Content:   reqData.Content,
		LessonIDs: datatypes.JSONSlice[uint]{},
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	course.ModuleIDs = append(course.ModuleIDs, module.ID)
	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course modules!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully under the course", fiber.Map{
		"module": module,
	})
}

// AdminGetModules lists the modules referenced by a course
func AdminGetModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules retrieved successfully", fiber.Map{
		"modules": expandModules(course.ModuleIDs),
	})
}

// AdminUpdateModule updates a module after validating the parent chain
func AdminUpdateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	_, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	reqData, okData := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !okData {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module.Title = reqData.Title
	module.Content = reqData.Content

	if err := database.Database.Db.Save(module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully under the course", fiber.Map{
		"module": module,
	})
}

// AdminDeleteModule removes a module and its id from the parent course in
// one transaction. Lessons under the module are left to the orphan
// sweeper, matching the non-cascading delete of courses.
func AdminDeleteModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	course, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	tx := database.Database.Db.Begin()

	course.ModuleIDs = removeID(course.ModuleIDs, module.ID)
	if err := tx.Save(course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course modules!", nil)
	}

	if err := tx.Delete(module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully from the course", nil)
}
