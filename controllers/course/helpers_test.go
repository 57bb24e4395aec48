package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	adminRoutes "lms/routers/adminRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// setupApp wires the full route surface against a fresh in-memory store.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the single in-memory database alive

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

// createAdmin seeds an admin account and returns a usable token.
func createAdmin(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{Email: "admin@x.com", Password: string(hash), Role: "admin"}
	require.NoError(t, database.Database.Db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)
	return token
}

// createUser seeds a user account and returns its id and token.
func createUser(t *testing.T, username, email string) (uint, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Email: email, Password: string(hash), Role: "user"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return user.ID, token
}

// doJSON performs a request with an optional JSON body and decodes the
// response envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// createCourse creates a course through the API and returns its id.
func createCourse(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/api/admin/createCourse", token, fiber.Map{
		"title":       title,
		"description": "A course about " + title,
		"createdBy":   "Test Admin",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	course := env.Data["course"].(map[string]interface{})
	return uint(course["ID"].(float64))
}

func courseAdminPath(courseID uint, op string) string {
	return fmt.Sprintf("/api/admin/course/%d/%s", courseID, op)
}

func moduleAdminPath(courseID, moduleID uint, op string) string {
	return fmt.Sprintf("/api/admin/course/%d/module/%d/%s", courseID, moduleID, op)
}

// createModule creates a module under a course through the API.
func createModule(t *testing.T, app *fiber.App, token string, courseID uint, title string) uint {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost,
		courseAdminPath(courseID, "createModuleUnderCourse"), token, fiber.Map{
			"title":   title,
			"content": "Content for " + title,
		})
	require.Equal(t, http.StatusCreated, status, env.Message)

	module := env.Data["module"].(map[string]interface{})
	return uint(module["ID"].(float64))
}
