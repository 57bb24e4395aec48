package authController

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminRegister registers a new admin account
func AdminRegister(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdmin").(*authValidator.AdminCredentials)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if an admin with this email already exists
	if err := db.Where("email = ? AND role = ?", reqData.Email, "admin").First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Admin with this email already exists", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	admin := models.User{
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Admin registration failed. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin registered successfully", fiber.Map{
		"id":    admin.ID,
		"email": admin.Email,
	})
}

// AdminLogin authenticates an admin. Unknown email and wrong password
// yield the same message so the response never reveals which one failed.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdmin").(*authValidator.AdminCredentials)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var admin models.User
	if err := database.Database.Db.Where("email = ? AND role = ?", reqData.Email, "admin").First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin logged in successfully", fiber.Map{
		"admin": fiber.Map{
			"id":    admin.ID,
			"email": admin.Email,
		},
		"token": token,
	})
}
