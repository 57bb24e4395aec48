package courseValidator

import (
	"regexp"
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// videoUrlRegex matches http/https/ftp URLs with a non-empty host and path
var videoUrlRegex = regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#].[^\s]*$`)

// CourseRequest is the validated body for course create/update
type CourseRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	CreatedBy   string `json:"createdBy" form:"createdBy"`
}

// ModuleRequest is the validated body for module create/update
type ModuleRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// LessonRequest is the validated body for lesson create/update
type LessonRequest struct {
	Title    string `json:"title" form:"title"`
	VideoUrl string `json:"videoUrl" form:"videoUrl"`
}

// AssignRequest is the validated body for course assignment
type AssignRequest struct {
	UserID   uint `json:"userId"`
	CourseID uint `json:"courseId"`
}

// parseParam parses a numeric path parameter and stores it in Locals
// under key. Returns false after writing the error response on failure.
func parseParam(c *fiber.Ctx, name, key, label string) bool {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		return false
	}
	c.Locals(key, uint(id))
	return true
}

func validateTitle(title string, errors map[string]string) {
	title = strings.TrimSpace(title)
	if title == "" {
		errors["title"] = "Title is required"
	} else if len(title) < 8 {
		errors["title"] = "Title must be atleast 8 characters"
	} else if len(title) > 60 {
		errors["title"] = "Title should be less than 60 characters"
	}
}

func validateText(field, value string, errors map[string]string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errors[field] = "Description is required"
	} else if len(value) < 8 {
		errors[field] = "Description must be atleast 8 characters"
	} else if len(value) > 200 {
		errors[field] = "Description should be less than 200 characters"
	}
}

// CreateCourse validates course creation bodies (JSON or multipart form)
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateTitle(reqData.Title, errors)
		validateText("description", reqData.Description, errors)
		if strings.TrimSpace(reqData.CreatedBy) == "" {
			errors["createdBy"] = "CreatedBy is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.CreatedBy = strings.TrimSpace(reqData.CreatedBy)

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the :id param and course update bodies
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "id", "courseID", "course ID") {
			return nil
		}

		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateTitle(reqData.Title, errors)
		validateText("description", reqData.Description, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseByID validates the :id param for single-course routes
func CourseByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "id", "courseID", "course ID") {
			return nil
		}
		return c.Next()
	}
}

// CourseParams validates the :courseId param
func CourseParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		return c.Next()
	}
}

// ModuleParams validates the :courseId and :moduleId params
func ModuleParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		return c.Next()
	}
}

// LessonParams validates the :courseId, :moduleId and :lessonId params
func LessonParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		if !parseParam(c, "lessonId", "lessonID", "lesson ID") {
			return nil
		}
		return c.Next()
	}
}

func validateModuleBody(c *fiber.Ctx) error {
	reqData := new(ModuleRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	validateTitle(reqData.Title, errors)
	validateText("content", reqData.Content, errors)

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Content = strings.TrimSpace(reqData.Content)

	c.Locals("validatedModule", reqData)
	return c.Next()
}

// CreateModule validates the :courseId param and module bodies
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		return validateModuleBody(c)
	}
}

// UpdateModule validates module params and bodies
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		return validateModuleBody(c)
	}
}

func validateLessonBody(c *fiber.Ctx) error {
	reqData := new(LessonRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	validateTitle(reqData.Title, errors)

	videoUrl := strings.TrimSpace(reqData.VideoUrl)
	if videoUrl == "" {
		errors["videoUrl"] = "Video URL is required"
	} else if !videoUrlRegex.MatchString(videoUrl) {
		errors["videoUrl"] = videoUrl + " is not a valid URL!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.VideoUrl = videoUrl

	c.Locals("validatedLesson", reqData)
	return c.Next()
}

// CreateLesson validates the module params and lesson bodies
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		return validateLessonBody(c)
	}
}

// UpdateLesson validates the lesson params and bodies
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		if !parseParam(c, "lessonId", "lessonID", "lesson ID") {
			return nil
		}
		return validateLessonBody(c)
	}
}

// AssignCourse validates assignment bodies
func AssignCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 || reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and Course ID are required", nil)
		}

		c.Locals("validatedAssign", reqData)
		return c.Next()
	}
}

// RemoveCourseParams validates the :userId and :courseId params
func RemoveCourseParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "userId", "userID", "user ID") {
			return nil
		}
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		return c.Next()
	}
}

// UserParams validates the :userId param
func UserParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "userId", "userID", "user ID") {
			return nil
		}
		return c.Next()
	}
}

// UserCourseParams validates the :userId and :courseId params
func UserCourseParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "userId", "userID", "user ID") {
			return nil
		}
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		return c.Next()
	}
}

// UserLessonParams validates the :userId, :courseId and :moduleId params
func UserLessonParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseParam(c, "userId", "userID", "user ID") {
			return nil
		}
		if !parseParam(c, "courseId", "courseID", "course ID") {
			return nil
		}
		if !parseParam(c, "moduleId", "moduleID", "module ID") {
			return nil
		}
		return c.Next()
	}
}
