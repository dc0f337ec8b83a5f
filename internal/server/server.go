// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	_ "reelgraph/docs" // swagger docs
	"reelgraph/internal/cache"
	"reelgraph/internal/config"
	"reelgraph/internal/database"
	"reelgraph/internal/featureflags"
	"reelgraph/internal/middleware"
	"reelgraph/internal/repository"
	"reelgraph/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager

	filmService    *service.FilmService
	userService    *service.UserService
	recService     *service.RecommendationService
	reviewService  *service.ReviewService
	directorSvc    *service.DirectorService
	catalogService *service.CatalogService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)
	flags := featureflags.NewManager(cfg.FeatureFlags)

	prom := middleware.InitMetrics("reelgraph-api")

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		featureFlags:   flags,
		filmService:    service.NewFilmService(repos.Films, repos.Catalog, repos.Directors, repos.Users, uow, flags),
		userService:    service.NewUserService(repos.Users, repos.Friends, repos.Feed, uow),
		recService:     service.NewRecommendationService(repos.Graph, repos.Films, repos.Users, flags),
		reviewService:  service.NewReviewService(repos.Reviews, repos.Users, repos.Films, uow),
		directorSvc:    service.NewDirectorService(repos.Directors),
		catalogService: service.NewCatalogService(repos.Catalog),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.RequestLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
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

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Reelgraph Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Feature flag snapshot, useful for operators
	api.Get("/feature-flags", s.GetFeatureFlags)

	// Film routes. Specific paths before generic /:id.
	films := api.Group("/films")
	films.Get("/", s.GetFilms)
	films.Post("/", s.CreateFilm)
	films.Put("/", s.UpdateFilm)
	films.Get("/popular", s.GetPopularFilms)
	films.Get("/search", s.SearchFilms)
	films.Get("/common", s.GetCommonFilms)
	films.Get("/director/:directorId", s.GetDirectorFilms)
	films.Put("/:id/like/:userId", s.AddLike)
	films.Delete("/:id/like/:userId", s.RemoveLike)
	films.Get("/:id", s.GetFilm)
	films.Delete("/:id", s.DeleteFilm)

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", s.CreateUser)
	users.Put("/", s.UpdateUser)
	users.Get("/:id/friends/common/:otherId", s.GetCommonFriends)
	users.Put("/:id/friends/:friendId", s.AddFriend)
	users.Delete("/:id/friends/:friendId", s.RemoveFriend)
	users.Get("/:id/friends", s.GetFriends)
	users.Get("/:id/feed", s.GetFeed)
	users.Get("/:id/recommendations", s.GetRecommendations)
	users.Get("/:id", s.GetUser)
	users.Delete("/:id", s.DeleteUser)

	// Review routes
	reviews := api.Group("/reviews")
	reviews.Get("/", s.GetReviews)
	reviews.Post("/", s.CreateReview)
	reviews.Put("/", s.UpdateReview)
	reviews.Put("/:id/like/:userId", s.LikeReview)
	reviews.Put("/:id/dislike/:userId", s.DislikeReview)
	reviews.Delete("/:id/like/:userId", s.UnvoteReview)
	reviews.Delete("/:id/dislike/:userId", s.UnvoteReview)
	reviews.Get("/:id", s.GetReview)
	reviews.Delete("/:id", s.DeleteReview)

	// Director routes
	directors := api.Group("/directors")
	directors.Get("/", s.GetDirectors)
	directors.Post("/", s.CreateDirector)
	directors.Put("/", s.UpdateDirector)
	directors.Get("/:id", s.GetDirector)
	directors.Delete("/:id", s.DeleteDirector)

	// Reference catalogs
	genres := api.Group("/genres")
	genres.Get("/", s.GetGenres)
	genres.Get("/:id", s.GetGenre)

	mpa := api.Group("/mpa")
	mpa.Get("/", s.GetMpaRatings)
	mpa.Get("/:id", s.GetMpa)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The caches degrade gracefully, so missing Redis does not fail readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overallStatus,
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}

// GetFeatureFlags handles GET /api/feature-flags
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := uint(c.QueryInt("userId", 0))
	return c.JSON(fiber.Map{
		"flags": s.featureFlags.Snapshot(userID),
	})
}
