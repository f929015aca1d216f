package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/database"
	"doctor-directory/internal/infrastructure/remote"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	DB             *gorm.DB
	RedisClient    *redis.Client
	DoctorSource   *service.DoctorSource
	ListingUsecase usecase.DoctorListingUsecase
	Server         *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app, err := NewCore()
	if err != nil {
		return nil, err
	}

	app.Server = initializeServer(app)

	return app, nil
}

// NewCore wires configuration, storage and the doctor source without the
// HTTP layer. The seeding CLI uses it directly.
func NewCore() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, err
	}
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	log := logrus.StandardLogger()

	app.DoctorSource = service.NewDoctorSource(
		repository.NewDoctorRepository(db),
		cache.NewDoctorCache(redisClient),
		remote.NewDoctorFeedClient(cfg.Source.URL, cfg.Source.Timeout),
		validator.NewValidator(),
		log,
		cfg.Source.CacheTTL,
	)
	app.ListingUsecase = usecase.NewDoctorListingUsecase(log, app.DoctorSource, cfg.Source.PhotoPlaceholder)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(app *App) *http.Server {
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(app.ListingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", app.Config.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// The listing answers 503 until the single dataset load finishes.
	go func() {
		if err := app.ListingUsecase.Start(context.Background()); err != nil {
			logrus.Errorf("Doctor listing unavailable: %v", err)
			return
		}
		logrus.Info("Doctor listing loaded")
	}()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
