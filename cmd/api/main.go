// @title Quiz Maker API
// @version 1.0
// @description Turns uploaded textbooks into chapter quizzes and grades student submissions.
// @host localhost:8090
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

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "quiz-maker/cmd/api/docs"
	"quiz-maker/internal/adapter"
	"quiz-maker/internal/cache"
	"quiz-maker/internal/config"
	"quiz-maker/internal/database"
	"quiz-maker/internal/domain"
	"quiz-maker/internal/handler"
	"quiz-maker/internal/logger"
	"quiz-maker/internal/middleware"
	"quiz-maker/internal/repository"
	"quiz-maker/internal/service"
	"quiz-maker/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.Driver == database.DriverSQLite {
		if err := database.RunMigrations(ctx, db, cfg.DB.Driver, database.Up); err != nil {
			appLogger.Fatal("Failed to migrate sqlite database", zap.Error(err))
		}
	}

	var quizCache domain.Cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, serving quizzes without cache", zap.Error(err))
		quizCache = adapter.NewNoopCache()
	} else {
		defer redisClient.Close()
		quizCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	store, err := storage.NewFSStore(cfg.Storage.UploadDir)
	if err != nil {
		appLogger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Repositories
	textbookRepo := repository.NewTextbookDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	quizRepo := repository.NewQuizDatabaseAdapter(db)
	studentRepo := repository.NewStudentDatabaseAdapter(db)
	resultRepo := repository.NewResultDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	ingestService := service.NewIngestService(textbookRepo, questionRepo, txManager, nil, cfg)
	quizService := service.NewQuizService(textbookRepo, questionRepo, quizRepo, studentRepo, resultRepo, txManager, quizCache, cfg)
	studentService := service.NewStudentService(studentRepo, resultRepo, authService)
	exportService := service.NewExportService(quizRepo, resultRepo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Textbook: handler.NewTextbookHandler(ingestService, store),
		Quiz:     handler.NewQuizHandler(quizService, exportService),
		Student:  handler.NewStudentHandler(studentService),
		Auth:     authService,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("driver", cfg.DB.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
