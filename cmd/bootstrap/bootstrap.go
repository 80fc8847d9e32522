package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medical-appointment/config"
	deliveryHttp "go-medical-appointment/internal/delivery/http"
	"go-medical-appointment/internal/delivery/http/handler"
	"go-medical-appointment/internal/delivery/http/middleware"
	"go-medical-appointment/internal/domain/policy"
	"go-medical-appointment/internal/infrastructure/cache"
	"go-medical-appointment/internal/infrastructure/database"
	"go-medical-appointment/internal/infrastructure/messaging"
	"go-medical-appointment/internal/repository"
	"go-medical-appointment/internal/service"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/clock"
	"go-medical-appointment/pkg/jwt"
	"go-medical-appointment/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   service.AppointmentEventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = NewLogger(cfg.Log)
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	// Initialize event publisher
	publisher, err := newPublisher(cfg, redisClient, app.Log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}
	app.Publisher = publisher

	// Initialize all layers
	app.Server = initializeServer(cfg, app.Log, db, redisClient, publisher)

	return app, nil
}

// NewLogger builds the JSON logrus logger shared by every layer
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// newPublisher selects the appointment event sink from EVENTS_DRIVER
func newPublisher(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (service.AppointmentEventPublisher, error) {
	switch cfg.Events.Driver {
	case "", "redis":
		log.Infof("Publishing appointment events to Redis stream %s", cfg.Events.RedisStream)
		return service.NewRedisStreamPublisher(redisClient, cfg.Events.RedisStream, cfg.Events.StreamMaxLen, log), nil
	case "kafka":
		writer, err := messaging.NewKafkaWriter(cfg.Kafka, log)
		if err != nil {
			return nil, err
		}
		return service.NewKafkaPublisher(writer, log), nil
	case "log":
		return service.NewLogPublisher(log), nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, publisher service.AppointmentEventPublisher) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Wall clock in the clinic's zone
	clk := clock.New(cfg.App.Location())
	windowPolicy := policy.WindowPolicy{
		CancelWindow:     cfg.Booking.CancelWindow,
		RescheduleWindow: cfg.Booking.RescheduleWindow,
	}

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	appointmentRepo := repository.NewAppointmentRepository()
	ruleRepo := repository.NewScheduleRuleRepository()
	blockedRepo := repository.NewBlockedRangeRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	patientRepo := repository.NewPatientProfileRepository()
	familyMemberRepo := repository.NewFamilyMemberRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	availabilityUsecase := usecase.NewAvailabilityUsecase(txManager, log, clk, ruleRepo, blockedRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(
		txManager, log, clk, windowPolicy,
		appointmentRepo, ruleRepo, blockedRepo, doctorRepo, patientRepo, familyMemberRepo,
		auditService, publisher,
	)
	scheduleRuleUsecase := usecase.NewScheduleRuleUsecase(txManager, log, ruleRepo, doctorRepo, auditService)
	blockedRangeUsecase := usecase.NewBlockedRangeUsecase(txManager, log, blockedRepo, auditService)
	familyMemberUsecase := usecase.NewFamilyMemberUsecase(txManager, log, familyMemberRepo, patientRepo, auditService)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	scheduleRuleHandler := handler.NewScheduleRuleHandler(scheduleRuleUsecase, customValidator)
	blockedRangeHandler := handler.NewBlockedRangeHandler(blockedRangeUsecase, customValidator)
	familyMemberHandler := handler.NewFamilyMemberHandler(familyMemberUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		healthHandler,
		availabilityHandler,
		appointmentHandler,
		scheduleRuleHandler,
		blockedRangeHandler,
		familyMemberHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, timezone: %s", app.Config.App.Env, app.Config.App.Location())
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close flushes the event publisher, then closes database and Redis connections
func (app *App) Close() {
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %+v", err)
		}
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
