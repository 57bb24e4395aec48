package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly returns a middleware that ensures the authenticated account
// still exists and carries the admin role. The account is re-fetched so a
// deleted or demoted admin cannot keep using an old token.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok := c.Locals("accountId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var account models.User
		if err := database.Database.Db.First(&account, accountID).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Account not found!", nil)
		}

		if account.Role != "admin" {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}

		return c.Next()
	}
}
