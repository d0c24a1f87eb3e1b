// @title ExamGen API
// @version 1.0
// @description Generates exam questions with a language model and stores exams, papers and a question bank for teachers.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "examgen/cmd/api/docs"
	"examgen/internal/adapter"
	"examgen/internal/adapter/gateway"
	"examgen/internal/cache"
	"examgen/internal/config"
	"examgen/internal/database"
	"examgen/internal/domain"
	"examgen/internal/handler"
	"examgen/internal/logger"
	"examgen/internal/middleware"
	"examgen/internal/repository"
	"examgen/internal/service"
	"examgen/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.Open(cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(context.Background(), db.DB, cfg.DB.Driver); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	examRepository := repository.NewExamDatabaseAdapter(db)
	paperRepository := repository.NewPaperDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	teacherRepository := repository.NewTeacherDatabaseAdapter(db)

	// Redis is optional: without it drafts are not kept and logout cannot
	// revoke tokens before they expire.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	} else {
		appLogger.Warn("Redis is not configured. Drafts and token revocation are disabled.")
	}

	// Model gateway and response normalizer
	modelGateway, err := gateway.FromConfig(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create model gateway", zap.Error(err))
	}
	if cfg.LLM.Credential == "" && cfg.LLM.Provider != "ollama" {
		appLogger.Warn("No LLM credential configured; generation requests will fail", zap.String("provider", cfg.LLM.Provider))
	}
	strategy, err := domain.ExtractionStrategyByName(cfg.Generation.Extraction)
	if err != nil {
		appLogger.Fatal("Invalid extraction strategy", zap.Error(err))
	}
	normalizer := domain.NewNormalizer(strategy)

	validator := validation.NewValidator(cfg.Generation.MaxAmount)

	// Initialize services
	generationService := service.NewGenerationService(modelGateway, normalizer, cacheAdapter, cfg.Generation)
	examService := service.NewExamService(examRepository, validator)
	paperService := service.NewPaperService(paperRepository, validator)
	questionBankService := service.NewQuestionBankService(questionRepository, validator)
	dashboardService := service.NewDashboardService(teacherRepository, paperRepository, questionRepository)

	authService, err := service.NewAuthService(teacherRepository, cacheAdapter, validator, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: handler.DraftIDHeader,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Exam:     handler.NewExamHandler(generationService, examService),
		Teacher:  handler.NewTeacherHandler(authService, dashboardService),
		Paper:    handler.NewPaperHandler(paperService),
		Question: handler.NewQuestionHandler(questionBankService),
		Health:   handler.NewHealthHandler(db, cacheAdapter),
	}, authService, middleware.NewValidationMiddleware(validator, cfg.Generation.DefaultAmount))

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
