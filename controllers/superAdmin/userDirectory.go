package superAdminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists every user account. The password hash never leaves
// the model (json:"-").
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("role = ?", "user").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	if len(users) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No users found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully", fiber.Map{
		"users": users,
	})
}

// DeleteUserById removes a user account. Assignments referencing the
// user live on that user's own record, so nothing else is cleaned up.
func DeleteUserById(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND role = ?", userID, "user").First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	if err := database.Database.Db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", fiber.Map{
		"userId": userID,
	})
}
