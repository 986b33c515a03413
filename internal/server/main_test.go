package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/repository"
	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestServer builds a Server wired to db with all routes registered.
// Prometheus middleware is left out so repeated test runs do not collide
// on collector registration.
func newTestServer(t *testing.T, db *gorm.DB) (*Server, *fiber.App) {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	s := &Server{
		config:      &config.Config{Env: "test"},
		db:          db,
		sessions:    session.New(),
		userRepo:    userRepo,
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		userService: service.NewUserService(userRepo),
		postService: service.NewPostService(postRepo, userRepo, tagRepo),
		tagService:  service.NewTagService(tagRepo),
	}

	app := NewApp()
	s.SetupRoutes(app)
	return s, app
}

// postForm submits an application/x-www-form-urlencoded POST.
func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// getPage fetches a page and returns the response and its body.
func getPage(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}
