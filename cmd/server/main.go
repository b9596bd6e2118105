// @title University Dashboard API
// @version 1.0
// @description Productivity analytics backend for the university dashboard
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"unidash-be/config"
	_ "unidash-be/docs"
	"unidash-be/internal/analytics"
	"unidash-be/internal/database"
	"unidash-be/internal/handlers"
	"unidash-be/internal/logging"
	"unidash-be/internal/middleware"
	"unidash-be/internal/repository"
	"unidash-be/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logging.InitLogger(cfg)

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongodb.Database)
	usageRepo := repository.NewUsageEventRepository(mongodb.Database, repository.NewStoreBreaker("usage-events", cfg, log))
	documentRepo := repository.NewDocumentRepository(mongodb.Database, repository.NewStoreBreaker("documents", cfg, log))

	// Initialize services
	gmailService := services.NewGmailService(cfg)
	dashboard := analytics.NewService(analytics.PolicyFromConfig(cfg.Analytics), usageRepo, documentRepo, log)

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(userRepo, gmailService, dashboard, log)
	healthHandler := handlers.NewHealthHandler(mongodb)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg))

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/health", healthHandler.Health)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/analytics/dashboard", analyticsHandler.GetDashboard)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
