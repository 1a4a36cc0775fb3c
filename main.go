package main

import (
	"net/http"
	"time"

	"shoply-be/internal/cache"
	"shoply-be/internal/config"
	"shoply-be/internal/controllers"
	"shoply-be/internal/database"
	"shoply-be/internal/jwt"
	"shoply-be/internal/middleware"
	"shoply-be/internal/repository"
	"shoply-be/internal/service"
	"shoply-be/internal/uploader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis, continuing without cache")
		cacheClient = nil
	} else {
		log.Info().Msg("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Initialize JWT service. TTL 0 issues tokens without an expiry claim.
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize the media uploader
	imageUploader := uploader.NewImageKitUploader(cfg.ImageKitPrivateKey, cfg.ImageKitUploadURL, cfg.ImageKitFolder)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	productService := service.NewProductService(productRepo, imageUploader, cacheClient)
	cartService := service.NewCartService(cartRepo, productRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService, cfg.FrontendURL)
	cartController := controllers.NewCartController(cartService)

	// Create a Gin router
	router := gin.Default()

	// Permissive cross-origin policy: any origin may call the API.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Probe endpoints
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "Connect Success")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Auth routes
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// Product routes (public)
	router.POST("/products", productController.Create)
	router.GET("/products", productController.List)
	router.DELETE("/products/:id", productController.Delete)
	router.GET("/products/:id/qrcode", productController.QRCode)

	// Cart routes - require JWT authentication
	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware(jwtService))
	{
		cart.POST("/add", cartController.Add)
		cart.GET("", cartController.Get)
		cart.DELETE("/remove/:productId", cartController.Remove)
	}

	// Start the server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
