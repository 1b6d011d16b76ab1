// Package server contains the HTTP handlers for the marketplace API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/cache"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/config"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/database"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/mailer"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/middleware"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	productRepo  repository.ProductRepository
	sellerRepo   repository.SellerRepository
	followerRepo repository.FollowerRepository
	favoriteRepo repository.FavoriteRepository

	catalogService  *service.CatalogService
	listingService  *service.ListingService
	sellerService   *service.SellerService
	followService   *service.FollowService
	favoriteService *service.FavoriteService
	contactService  *service.ContactService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	mail := mailer.New(cfg.MailAPIURL, cfg.MailAPIKey, cfg.ContactRecipient)

	return NewServerWithDeps(cfg, db, cache.GetClient(), mail)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mail service.Mailer) (*Server, error) {
	productRepo := repository.NewProductRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	followerRepo := repository.NewFollowerRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	middleware.InitMiddleware(cfg)
	prom := fiberprometheus.New("timbiriche-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		productRepo:    productRepo,
		sellerRepo:     sellerRepo,
		followerRepo:   followerRepo,
		favoriteRepo:   favoriteRepo,
	}
	server.catalogService = service.NewCatalogService(productRepo)
	server.listingService = service.NewListingService(productRepo)
	server.sellerService = service.NewSellerService(sellerRepo, followerRepo, cfg.AdminEmailList())
	server.followService = service.NewFollowService(followerRepo, sellerRepo)
	server.favoriteService = service.NewFavoriteService(favoriteRepo, productRepo)
	server.contactService = service.NewContactService(mail)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.OptionalAuth)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
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

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/api/metrics")
	}

	// Public catalog routes
	products := api.Group("/products")
	products.Get("/", s.ListProducts)
	products.Get("/promoted", s.ListPromoted)
	products.Get("/:id", s.GetProduct)

	// Public seller routes
	sellers := api.Group("/sellers")
	sellers.Get("/:id", s.GetSellerProfile)
	sellers.Get("/:id/products", s.GetSellerProducts)

	// Public read: anonymous callers get "not following" rather than a
	// 401. OptionalAuth has already resolved the identity when present.
	api.Get("/follows/:sellerId", s.IsFollowing)

	// Contact form
	api.Post("/contact", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "contact"), s.SubmitContact)

	// Protected routes: valid token plus a materialized seller row.
	protected := api.Group("", middleware.AuthRequired, s.RequireSeller())

	me := protected.Group("/me")
	me.Get("/", s.GetMyProfile)
	me.Put("/", s.UpdateMyProfile)
	me.Get("/products", s.GetMyProducts)

	myProducts := protected.Group("/products")
	myProducts.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_listing"), s.CreateProduct)
	myProducts.Put("/:id", s.UpdateProduct)
	myProducts.Delete("/:id", s.DeleteProduct)
	myProducts.Post("/:id/sold", s.ToggleSold)
	myProducts.Post("/:id/promote", s.TogglePromoted)

	protected.Post("/follows/:sellerId", s.ToggleFollow)

	favorites := protected.Group("/favorites")
	favorites.Get("/", s.ListFavorites)
	favorites.Post("/sync", s.SyncFavorites)
	favorites.Post("/:productId", s.ToggleFavorite)
}

// RequireSeller resolves the authenticated identity into a seller row,
// creating one on first contact, and stores it in locals for handlers.
// Must be placed after AuthRequired.
func (s *Server) RequireSeller() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := middleware.IdentityFrom(c)
		if ident == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication required"))
		}
		seller, err := s.sellerService.Ensure(c.Context(), *ident)
		if err != nil {
			return models.RespondWithError(c, models.StatusFor(err), err)
		}
		c.Locals("seller", seller)
		return c.Next()
	}
}

// currentSeller returns the seller materialized by RequireSeller.
func currentSeller(c *fiber.Ctx) *models.Seller {
	seller, _ := c.Locals("seller").(*models.Seller)
	return seller
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional:
// the catalog degrades without it, so only the database gates readiness.
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

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Timbiriche API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	s.sellerService.BootstrapAdmins(context.Background())

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
