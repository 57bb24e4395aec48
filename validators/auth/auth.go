package authValidator

import (
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AdminCredentials is the request body for admin register/login
type AdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRegisterRequest is the request body for user registration
type UserRegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserLoginRequest carries an identifier matched against email or username
type UserLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AdminCredentialsValidator validates admin register and login bodies
func AdminCredentialsValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminCredentials)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Email) == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required", nil)
		}

		if err := validate.Var(reqData.Email, "email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid email address", nil)
		}

		c.Locals("validatedAdmin", reqData)
		return c.Next()
	}
}

// UserRegister validates user registration bodies
func UserRegister() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserRegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Username
		username := strings.TrimSpace(reqData.Username)
		if len(username) < 3 {
			errors["username"] = "Username must be at least 3 characters long"
		} else if len(username) > 30 {
			errors["username"] = "Username must be at most 30 characters long"
		}

		// Validate Email
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Please provide a valid email address"
		}

		// Validate Password
		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long"
		}

		// Validate Role (optional, defaults to user)
		if reqData.Role != "" {
			if err := validate.Var(reqData.Role, "oneof=user admin"); err != nil {
				errors["role"] = "Role must be either user or admin"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Username = username
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// UserLogin validates user login bodies
func UserLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Identifier) == "" {
			errors["identifier"] = "Email or username is required"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
