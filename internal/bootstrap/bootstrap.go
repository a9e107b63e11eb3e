package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/unifiedacademics/uap-backend/internal/app/controllers"
	appMigrations "github.com/unifiedacademics/uap-backend/internal/app/migrations"
	appRepos "github.com/unifiedacademics/uap-backend/internal/app/repositories"
	appRoutes "github.com/unifiedacademics/uap-backend/internal/app/routes"
	appServices "github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/config"
	"github.com/unifiedacademics/uap-backend/internal/db"
	appMiddleware "github.com/unifiedacademics/uap-backend/internal/middleware"
	pkgAuth "github.com/unifiedacademics/uap-backend/internal/pkg/auth"
	"github.com/unifiedacademics/uap-backend/internal/pkg/email"
	"github.com/unifiedacademics/uap-backend/internal/pkg/logger"
	"github.com/unifiedacademics/uap-backend/internal/pkg/mailqueue"
	"github.com/unifiedacademics/uap-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController      *appControllers.AuthController
	DashboardController *appControllers.DashboardController
	EmployeeController  *appControllers.EmployeeController
	StudentController   *appControllers.StudentController
	TeacherController   *appControllers.TeacherController
	StaffController     *appControllers.StaffController
	ContactController   *appControllers.ContactController

	SessionMiddleware *appMiddleware.SessionMiddleware

	MailQueue mailqueue.Queue
	Mailer    *email.Mailer
	Logger    zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores connects to PostgreSQL and MongoDB, runs SQL migrations and
// ensures the document indexes exist.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, *db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connections...")

	postgres, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to PostgreSQL")
		return nil, nil, err
	}

	mongodb, err := db.NewMongoDB(cfg)
	if err != nil {
		postgres.Close()
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(postgres.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		postgres.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		postgres.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := appRepos.EnsureIndexes(ctx, mongodb.Database); err != nil {
		postgres.Close()
		lgr.Error().Err(err).Msg("Failed to ensure document indexes")
		return nil, nil, err
	}

	lgr.Info().Msg("Stores ready.")
	return postgres, mongodb, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// mail outbox.
func BuildDependencies(cfg *config.Config, postgres *db.PostgresDB, mongodb *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(postgres, mongodb)

	// Mail outbox: Redis-backed when configured, in-process channel otherwise.
	switch strings.ToLower(cfg.Mail.QueueBackend) {
	case "redis":
		client := mailqueue.NewRedisClient(cfg.Redis.Addr)
		deps.MailQueue = mailqueue.NewRedisQueue(client, cfg.Redis.QueueKey)
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis mail queue")
	default:
		deps.MailQueue = mailqueue.NewInMemory(cfg.Mail.QueueSize)
		lgr.Info().Msg("Using in-memory mail queue")
	}

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)
	deps.Mailer = email.NewMailer(deps.MailQueue, sender, lgr)
	notifier := email.NewOutbox(deps.MailQueue, lgr)

	sessions := pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		Secret:        cfg.Auth.SessionSecret,
		SessionTTL:    cfg.SessionTTL(),
		ResetTokenTTL: cfg.ResetTokenTTL(),
		Issuer:        cfg.Auth.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, sessions, notifier, cfg.Server.BaseURL, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.Services.AuthService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.DashboardService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.Services.EmployeeService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService, deps.Services.ImportService, deps.Services.ExportService)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.TeacherService, deps.Services.ImportService, deps.Services.ExportService)
	deps.StaffController = appControllers.NewStaffController(deps.Services.StaffService, deps.Services.ImportService, deps.Services.ExportService)
	deps.ContactController = appControllers.NewContactController(deps.Services.ContactService)

	// Seed the first admin so a fresh deployment can log in.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.CreateDefaultAdmin(ctx, deps.Repos.EmployeeRepository, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.RequestMetrics())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.EmployeeController,
		deps.StudentController,
		deps.TeacherController,
		deps.StaffController,
		deps.ContactController,
		deps.SessionMiddleware,
	)

	return router
}
