// Package server contains the HTTP handlers for the application's API
// endpoints. The presentation layer never reads raw collections: every
// listing and mutation goes through the services, which route visibility
// decisions through the policy package.
package server

import (
	"context"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/middleware"
	"staffhub/internal/repository"
	"staffhub/internal/service"
	"staffhub/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	store          store.RecordStore
	redis          *redis.Client // nil for sqlite deployments; used for rate limiting
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	trainingRepo repository.TrainingRepository
	regRepo      repository.RegistrationRepository
	sessionRepo  repository.SessionRepository

	authService     *service.AuthService
	userService     *service.UserService
	postService     *service.PostService
	trainingService *service.TrainingService
	regService      *service.RegistrationService
	statsService    *service.StatsService
}

// NewServerWithDeps creates a Server using an already-initialized record
// store. Use this from the runtime bootstrap and from tests.
func NewServerWithDeps(cfg *config.Config, st store.RecordStore, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(st)
	postRepo := repository.NewPostRepository(st)
	trainingRepo := repository.NewTrainingRepository(st)
	regRepo := repository.NewRegistrationRepository(st)
	sessionRepo := repository.NewSessionRepository(st)

	middleware.InitMiddleware(cfg.JWTSecret)

	s := &Server{
		config:         cfg,
		store:          st,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("staffhub-api"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		trainingRepo:   trainingRepo,
		regRepo:        regRepo,
		sessionRepo:    sessionRepo,
	}
	s.authService = service.NewAuthService(userRepo, sessionRepo, cfg.VerifyPasswords)
	s.userService = service.NewUserService(userRepo, postRepo, regRepo)
	s.postService = service.NewPostService(postRepo, userRepo, cfg.ModerationRequired)
	s.trainingService = service.NewTrainingService(trainingRepo)
	s.regService = service.NewRegistrationService(regRepo, trainingRepo)
	s.statsService = service.NewStatsService(userRepo, postRepo)
	return s
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation
	app.Use(requestid.New())

	// Propagate request ID and user ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", middleware.AuthRequired, s.Logout)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/", s.GetColleagues)
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Get("/:id", s.GetUserProfile)

	// Post routes
	posts := protected.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/:id", s.GetPost)
	posts.Post("/:id/like", s.ToggleLike)
	posts.Post("/:id/comments", s.AddComment)

	// Training routes
	trainings := protected.Group("/trainings")
	trainings.Get("/", s.GetTrainings)
	trainings.Post("/", s.CreateTraining)
	trainings.Get("/:id", s.GetTraining)
	trainings.Put("/:id", s.UpdateTraining)
	trainings.Post("/:id/release", s.ReleaseTraining)
	trainings.Post("/:id/register", s.RegisterForTraining)

	// Registration routes
	protected.Get("/registrations/me", s.GetMyRegistrations)

	// Admin routes: role checks happen in the services, these routes just
	// group the admin surface.
	admin := protected.Group("/admin")
	admin.Get("/stats", s.GetAdminStats)
	admin.Get("/users", s.GetManagedUsers)
	admin.Patch("/users/:id/active", s.SetUserActive)
	admin.Delete("/users/:id", s.DeleteUser)
	admin.Get("/posts/pending", s.GetPendingPosts)
	admin.Post("/posts/:id/approve", s.ApprovePost)
	admin.Delete("/posts/:id", s.RejectPost)
	admin.Get("/trainings/:id/registrations", s.GetTrainingRegistrations)
	admin.Post("/registrations/:id/approve", s.ApproveRegistration)
	admin.Post("/registrations/:id/reject", s.RejectRegistration)
	admin.Post("/registrations/:id/complete", s.CompleteRegistration)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the record store is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if err := s.store.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.store.Close()
}
