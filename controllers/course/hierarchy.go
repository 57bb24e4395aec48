package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// containsID reports whether a parent reference list holds id.
func containsID(ids datatypes.JSONSlice[uint], id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID filters the first occurrence of id out of a reference list.
func removeID(ids datatypes.JSONSlice[uint], id uint) datatypes.JSONSlice[uint] {
	out := make(datatypes.JSONSlice[uint], 0, len(ids))
	removed := false
	for _, v := range ids {
		if !removed && v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}

// expandModules dereferences a course's module id list in order. Dangling
// ids (module deleted out from under the list) are skipped.
func expandModules(ids datatypes.JSONSlice[uint]) []courseModels.Module {
	modules := make([]courseModels.Module, 0, len(ids))
	for _, id := range ids {
		var module courseModels.Module
		if err := database.Database.Db.First(&module, id).Error; err == nil {
			modules = append(modules, module)
		}
	}
	return modules
}

// expandLessons dereferences a module's lesson id list in order.
func expandLessons(ids datatypes.JSONSlice[uint]) []courseModels.Lesson {
	lessons := make([]courseModels.Lesson, 0, len(ids))
	for _, id := range ids {
		var lesson courseModels.Lesson
		if err := database.Database.Db.First(&lesson, id).Error; err == nil {
			lessons = append(lessons, lesson)
		}
	}
	return lessons
}

// resolveCourseModule walks the parent chain top-down: course must exist,
// module must exist, and the module must belong to the course on both
// sides of the relation. Returns false with the response already written
// when any step fails.
func resolveCourseModule(c *fiber.Ctx, courseID, moduleID uint) (*courseModels.Course, *courseModels.Module, bool) {
	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		return nil, nil, false
	}

	var module courseModels.Module
	if err := database.Database.Db.First(&module, moduleID).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
		return nil, nil, false
	}

	if module.CourseID != courseID || !containsID(course.ModuleIDs, moduleID) {
		middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module does not belong to this course", nil)
		return nil, nil, false
	}

	return &course, &module, true
}
