package controllers

import (
	"log"
	"os"

	"lms/config"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// attachThumbnail saves the uploaded file locally, pushes it to the media
// store and writes the resulting identifiers onto the course. The previous
// non-sentinel image is destroyed first on replacement.
func attachThumbnail(c *fiber.Ctx, course *courseModels.Course) error {
	file, err := c.FormFile("thumbnail")
	if err != nil || file == nil {
		return nil // no file attached
	}

	localPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded thumbnail: %v", err)
		return err
	}
	defer os.Remove(localPath)

	result, err := utils.UploadMedia(localPath, config.AppConfig.MediaFolder)
	if err != nil {
		return err
	}

	if course.ThumbnailID != courseModels.ThumbnailSentinel {
		if err := utils.DestroyMedia(course.ThumbnailID); err != nil {
			return err
		}
	}

	course.ThumbnailID = result.PublicID
	course.ThumbnailURL = result.SecureURL
	return nil
}

// AdminCreateCourse creates a new course. The course document is always
// persisted and a response always sent; the thumbnail is uploaded only
// when a file is attached and stays at the sentinel pair otherwise.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		CreatedBy:    reqData.CreatedBy,
		ThumbnailID:  courseModels.ThumbnailSentinel,
		ThumbnailURL: courseModels.ThumbnailSentinel,
		ModuleIDs:    datatypes.JSONSlice[uint]{},
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course could not be created, please try again", nil)
	}

	if err := attachThumbnail(c, &course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Thumbnail upload failed!", nil)
	}
	if course.ThumbnailID != courseModels.ThumbnailSentinel {
		if err := database.Database.Db.Save(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course thumbnail!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", fiber.Map{
		"course": course,
	})
}

// AdminGetAllCourses lists every course
func AdminGetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully", fiber.Map{
		"courses": courses,
	})
}

// AdminGetCourseByID fetches a single course
func AdminGetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully", fiber.Map{
		"course": course,
	})
}

// AdminUpdateCourse updates title/description and optionally replaces the
// thumbnail
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description

	if err := attachThumbnail(c, &course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Thumbnail upload failed!", nil)
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", fiber.Map{
		"course": course,
	})
}

// AdminDeleteCourse deletes a course after destroying its stored
// thumbnail. Child modules/lessons are not cascaded here; the orphan
// sweeper reclaims them.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if course.ThumbnailID != courseModels.ThumbnailSentinel {
		if err := utils.DestroyMedia(course.ThumbnailID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting thumbnail from media store", nil)
		}
	}

	if err := database.Database.Db.Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
