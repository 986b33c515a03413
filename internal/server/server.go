// Package server contains the HTTP layer: Fiber app construction,
// middleware, routes, and page handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"blogly/internal/cache"
	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/repository"
	"blogly/internal/service"
	"blogly/views"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	sessions       *session.Store
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	tagRepo        repository.TagRepository
	userService    *service.UserService
	postService    *service.PostService
	tagService     *service.TagService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis beforehand.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		sessions:       session.New(),
		promMiddleware: middleware.InitMetrics("blogly"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		tagRepo:        tagRepo,
		userService:    service.NewUserService(userRepo),
		postService:    service.NewPostService(postRepo, userRepo, tagRepo),
		tagService:     service.NewTagService(tagRepo),
	}
}

// NewApp initializes the Fiber app with the embedded HTML views engine.
func NewApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	return fiber.New(fiber.Config{
		AppName: "Blogly",
		Views:   engine,
	})
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Recover from panics with a 500 instead of crashing the process
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus HTTP metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}
}

// SetupRoutes registers all page routes on the Fiber app
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/", s.Home)

	// Fixed-window limit on form submissions, keyed by IP
	formLimit := middleware.RateLimit(s.redis, 30, time.Minute, "forms")

	// User routes. Define /new before the generic /:id route.
	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/new", s.NewUserForm)
	users.Post("/new", formLimit, s.CreateUser)
	users.Get("/:id", s.ShowUser)
	users.Get("/:id/edit", s.EditUserForm)
	users.Post("/:id/edit", formLimit, s.UpdateUser)
	users.Post("/:id/delete", s.DeleteUser)
	users.Get("/:id/posts/new", s.NewPostForm)
	users.Post("/:id/posts/new", formLimit, s.CreatePost)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/:id", s.ShowPost)
	posts.Get("/:id/edit", s.EditPostForm)
	posts.Post("/:id/edit", formLimit, s.UpdatePost)
	posts.Post("/:id/delete", s.DeletePost)

	// Tag routes. Define /new before the generic /:id route.
	tags := app.Group("/tags")
	tags.Get("/", s.ListTags)
	tags.Get("/new", s.NewTagForm)
	tags.Post("/new", formLimit, s.CreateTag)
	tags.Get("/:id", s.ShowTag)
	tags.Get("/:id/edit", s.EditTagForm)
	tags.Post("/:id/edit", formLimit, s.UpdateTag)
	tags.Post("/:id/delete", s.DeleteTag)
}

// Home handles GET / and redirects to the user listing.
func (s *Server) Home(c *fiber.Ctx) error {
	return c.Redirect("/users", fiber.StatusFound)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Warn("error closing Redis client", "error", err.Error())
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
