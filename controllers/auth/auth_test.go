package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/models"
	adminRoutes "lms/routers/adminRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.SaltRound = 4 // keep hashing cheap under test

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

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

func registerUser(t *testing.T, app *fiber.App, username, email string) envelope {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/api/user/userregister", "", fiber.Map{
		"username": username,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	return env
}

func TestAdminRegisterRejectsDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	creds := fiber.Map{"email": "admin@x.com", "password": "secret1"}

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", creds)
	require.Equal(t, http.StatusCreated, status)

	status, env := doJSON(t, app, http.MethodPost, "/api/admin/register", "", creds)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Admin with this email already exists", env.Message)
}

func TestAdminLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"email": "admin@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)

	// Unknown email.
	status, env := doJSON(t, app, http.MethodPost, "/api/admin/login", "", fiber.Map{
		"email": "nobody@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)

	// Known email, wrong password: identical response.
	status, env = doJSON(t, app, http.MethodPost, "/api/admin/login", "", fiber.Map{
		"email": "admin@x.com", "password": "wrongpw",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestAdminRegisterValidatesEmailFormat(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"email": "not-an-email", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUserRegisterDefaultsRoleAndReturnsToken(t *testing.T) {
	app := setupApp(t)

	env := registerUser(t, app, "learner", "learner@x.com")

	user := env.Data["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotEmpty(t, env.Data["token"])

	var stored models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "learner").First(&stored).Error)
	assert.Equal(t, "user", stored.Role)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestUserRegisterRejectsDuplicates(t *testing.T) {
	app := setupApp(t)

	registerUser(t, app, "learner", "learner@x.com")

	// Same username, fresh email.
	status, env := doJSON(t, app, http.MethodPost, "/api/user/userregister", "", fiber.Map{
		"username": "learner",
		"email":    "fresh@x.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Username or email already exists.", env.Message)

	// Fresh username, same email.
	status, env = doJSON(t, app, http.MethodPost, "/api/user/userregister", "", fiber.Map{
		"username": "someoneelse",
		"email":    "learner@x.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Username or email already exists.", env.Message)
}

func TestUserRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"short username", fiber.Map{"username": "ab", "email": "a@x.com", "password": "secret1"}},
		{"bad email", fiber.Map{"username": "learner", "email": "nope", "password": "secret1"}},
		{"short password", fiber.Map{"username": "learner", "email": "a@x.com", "password": "12345"}},
	}

	for _, tc := range cases {
		status, _ := doJSON(t, app, http.MethodPost, "/api/user/userregister", "", tc.body)
		assert.Equal(t, http.StatusBadRequest, status, tc.name)
	}
}

func TestUserLoginByUsernameAndEmail(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "learner", "learner@x.com")

	for _, identifier := range []string{"learner", "learner@x.com"} {
		status, env := doJSON(t, app, http.MethodPost, "/api/user/userlogin", "", fiber.Map{
			"identifier": identifier,
			"password":   "secret1",
		})
		require.Equal(t, http.StatusOK, status, identifier)
		assert.NotEmpty(t, env.Data["token"])
	}
}

func TestUserLoginFailureMessages(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "learner", "learner@x.com")

	status, env := doJSON(t, app, http.MethodPost, "/api/user/userlogin", "", fiber.Map{
		"identifier": "unknown",
		"password":   "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid email or username.", env.Message)

	status, env = doJSON(t, app, http.MethodPost, "/api/user/userlogin", "", fiber.Map{
		"identifier": "learner",
		"password":   "wrongpw",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Incorrect password.", env.Message)
}

func TestUserLogoutRequiresToken(t *testing.T) {
	app := setupApp(t)
	env := registerUser(t, app, "learner", "learner@x.com")
	token := env.Data["token"].(string)

	status, _ := doJSON(t, app, http.MethodPost, "/api/user/userlogout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = doJSON(t, app, http.MethodPost, "/api/user/userlogout", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Logged out successfully.", env.Message)
}
