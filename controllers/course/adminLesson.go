package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// resolveLesson asserts the lesson exists and belongs to the module on
// both sides of the relation. Returns false with the response written on
// failure.
func resolveLesson(c *fiber.Ctx, module *courseModels.Module, lessonID uint) (*courseModels.Lesson, bool) {
	var lesson courseModels.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found", nil)
		return nil, false
	}

	if lesson.ModuleID != module.ID || !containsID(module.LessonIDs, lessonID) {
		middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson does not belong to this module", nil)
		return nil, false
	}

	return &lesson, true
}

// AdminCreateLesson creates a lesson under a module of a course
func AdminCreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	_, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	reqData, okData := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !okData {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID: moduleID,
		Title:    reqData.Title,
		VideoURL: reqData.VideoUrl,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&lesson).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	module.LessonIDs = append(module.LessonIDs, lesson.ID)
	if err := tx.Save(module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module lessons!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully under the module", fiber.Map{
		"lesson": lesson,
	})
}

// AdminGetLessons lists the lessons referenced by a module
func AdminGetLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	_, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons retrieved successfully", fiber.Map{
		"lessons": expandLessons(module.LessonIDs),
	})
}

// AdminUpdateLesson updates a lesson after validating the full parent
// chain course → module → lesson
func AdminUpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	_, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	lesson, ok := resolveLesson(c, module, lessonID)
	if !ok {
		return nil
	}

	reqData, okData := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !okData {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson.Title = reqData.Title
	lesson.VideoURL = reqData.VideoUrl

	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully under the module", fiber.Map{
		"lesson": lesson,
	})
}

// AdminDeleteLesson removes a lesson and its id from the parent module in
// one transaction
func AdminDeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	_, module, ok := resolveCourseModule(c, courseID, moduleID)
	if !ok {
		return nil
	}

	lesson, ok := resolveLesson(c, module, lessonID)
	if !ok {
		return nil
	}

	tx := database.Database.Db.Begin()

	module.LessonIDs = removeID(module.LessonIDs, lesson.ID)
	if err := tx.Save(module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module lessons!", nil)
	}

	if err := tx.Delete(lesson).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully from the module", nil)
}
