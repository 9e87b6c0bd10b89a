package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fin-circle.backend/internal/config"
	"fin-circle.backend/internal/infrastructure/models"
	"fin-circle.backend/internal/infrastructure/repositories"
	"fin-circle.backend/internal/interfaces/http/handlers"
	"fin-circle.backend/internal/interfaces/http/middleware"
	"fin-circle.backend/internal/metrics"
	"fin-circle.backend/internal/profilestore"
	"fin-circle.backend/internal/usecases"
	"fin-circle.backend/pkg/jwt"
	"fin-circle.backend/pkg/logger"
	"fin-circle.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(
			&models.User{},
			&models.SurveySubmission{},
			&models.AccessLog{},
			&models.Post{},
			&models.Reply{},
		); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)
	accessLogRepo := repositories.NewAccessLogRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	codeStore := redis.NewCodeStore()

	// Build the profile directory. Deterministic for a given seed, so a
	// restart reproduces the same directory.
	generator := profilestore.NewGenerator(profilestore.GeneratorConfig{
		Count: cfg.Profiles.Count,
		Seed:  cfg.Profiles.Seed,
	})
	store := profilestore.New(generator.Generate())
	logger.Info(context.Background(), "Profile directory built", zap.Int("profiles", store.Len()))

	collector := metrics.NewCollector(prometheus.NewRegistry())

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, codeStore, cfg.Auth.AdminPhone, cfg.Auth.SMSCodeTTL)
	searchUsecase := usecases.NewSearchUsecase(store, collector)
	disclosureUsecase := usecases.NewDisclosureUsecase(store, cfg.Survey.Window, collector)
	surveyUsecase := usecases.NewSurveyUsecase(surveyRepo, userRepo, cfg.Survey.Window, collector)
	historyUsecase := usecases.NewHistoryUsecase(accessLogRepo)
	forumUsecase := usecases.NewForumUsecase(postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(searchUsecase, disclosureUsecase, authUsecase)
	surveyHandler := handlers.NewSurveyHandler(surveyUsecase)
	historyHandler := handlers.NewHistoryHandler(historyUsecase)
	forumHandler := handlers.NewForumHandler(forumUsecase)
	adminHandler := handlers.NewAdminHandler(forumUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(collector.HTTPMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", collector.Handler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		surveyHandler:  surveyHandler,
		historyHandler: historyHandler,
		forumHandler:   forumHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("🚀 Fin-Circle Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
