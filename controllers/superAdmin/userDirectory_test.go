package superAdminController_test

import (
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

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
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

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{Email: "admin@x.com", Password: string(hash), Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app, token
}

func seedUser(t *testing.T, username, email string) uint {
	t.Helper()

	user := models.User{Username: username, Email: email, Password: "hash", Role: "user"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user.ID
}

func do(t *testing.T, app *fiber.App, method, path, token string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestGetAllUsersOmitsPasswordsAndAdmins(t *testing.T) {
	app, token := setupApp(t)
	seedUser(t, "alice", "alice@x.com")
	seedUser(t, "bob", "bob@x.com")

	status, raw := do(t, app, http.MethodGet, "/api/admin/getAllUsers", token)
	require.Equal(t, http.StatusOK, status)

	// The hash must not appear anywhere in the payload.
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "admin@x.com")

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	users := env.Data["users"].([]interface{})
	assert.Len(t, users, 2)
}

func TestGetAllUsersEmptyIsNotFound(t *testing.T) {
	app, token := setupApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/admin/getAllUsers", token)
	assert.Equal(t, http.StatusNotFound, status)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "No users found", env.Message)
}

func TestDeleteUserById(t *testing.T) {
	app, token := setupApp(t)
	userID := seedUser(t, "alice", "alice@x.com")

	path := fmt.Sprintf("/api/admin/deleteUserById/%d", userID)
	status, _ := do(t, app, http.MethodDelete, path, token)
	require.Equal(t, http.StatusOK, status)

	var user models.User
	assert.Error(t, database.Database.Db.First(&user, userID).Error)

	status, raw := do(t, app, http.MethodDelete, path, token)
	assert.Equal(t, http.StatusNotFound, status)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "User not found", env.Message)
}

func TestDeleteUserRejectsAdminIds(t *testing.T) {
	app, token := setupApp(t)

	var admin models.User
	require.NoError(t, database.Database.Db.Where("role = ?", "admin").First(&admin).Error)

	status, _ := do(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/deleteUserById/%d", admin.ID), token)
	assert.Equal(t, http.StatusNotFound, status)
}
