package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrdesk/internal/adapters/backend"
	"hrdesk/internal/adapters/http/handlers"
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/adapters/http/routes"
	"hrdesk/internal/adapters/identity"
	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/config"
	"hrdesk/internal/core/metrics"
	"hrdesk/internal/core/services"
	"hrdesk/internal/core/store"
	"hrdesk/internal/pkg/clock"
	"hrdesk/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	_ "hrdesk/docs" // Swagger docs
)

// @title HR Desk API
// @version 1.0
// @description Backend-for-frontend of the HR dashboard: sign-in, registration codes, leave, loans and employee records.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hrdesk.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ClientCookie
// @in cookie
// @name hr_client
// @description Workspace cookie issued on the first request.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Mode: "prod"}).Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Mode: cfg.AppMode, Level: cfg.LogLevel})
	clk := clock.Real()

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}
	log.Info().Msg("database migration completed")

	// Seed development sign-ins
	if cfg.IsDev() && cfg.Identity.SeedDev {
		if err := config.NewSeeder(db, config.DefaultDevCredentials).Run(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to seed dev credentials")
		}
	}

	healthChecks := map[string]handlers.HealthCheckFunc{
		"database": config.HealthCheck,
	}

	// Workspace persistence
	var persister store.Persister
	switch cfg.Store.Driver {
	case "database":
		persister = repositories.NewStateRepository(db)
	case "redis":
		rdb, err := config.ConnectRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		persister = repositories.NewRedisStateRepository(rdb, cfg.StoreTTL())
		healthChecks["redis"] = redisCheck(rdb)
	case "memory":
		log.Warn().Msg("workspace state is kept in memory only")
	}

	// Collaborators
	hrBackend := backend.NewClient(cfg.Backend.URL, cfg.Backend.ServiceToken, cfg.BackendTimeout(),
		backend.WithLogger(log))

	provider := identity.NewLocalProvider(
		repositories.NewCredentialRepository(db),
		repositories.NewOneTimeCodeRepository(db),
		hrBackend,
		identity.Router{Email: newEmailSender(cfg.Mail, log), Phone: identity.NewLogSender(log)},
		identity.Config{
			JWTSecret:   cfg.JWT.Secret,
			SessionTTL:  cfg.SessionTTL(),
			CodeTTL:     cfg.CodeTTL(),
			MaxAttempts: cfg.Identity.MaxAttempts,
		},
		clk,
		log,
	)

	// Services
	registry := services.NewWorkspaceRegistry(cfg.Store.Namespace, persister, provider, hrBackend, clk, log)
	leaveCfg := services.LeaveConfig{
		TotalAllowance: cfg.Leave.TotalAllowance,
		ByType:         cfg.Leave.ByType,
		Policy:         metrics.ParseLeavePolicy(cfg.Leave.Policy),
	}

	// Start cron service (idle workspace eviction, expired code purge)
	cronService, err := services.NewCronService(registry, provider, services.CronConfig{
		EvictSchedule: cfg.Cron.EvictSchedule,
		PurgeSchedule: cfg.Cron.PurgeSchedule,
		IdleTTL:       cfg.IdleTTL(),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cron schedule")
	}
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HR Desk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, cfg, routes.Deps{
		Registry:     registry,
		Dashboard:    services.NewDashboardService(hrBackend, leaveCfg, clk, log),
		Leave:        services.NewLeaveService(hrBackend, leaveCfg, clk, log),
		Loan:         services.NewLoanService(hrBackend, cfg.Loan.DefaultRate, log),
		Attendance:   services.NewAttendanceService(hrBackend),
		Records:      services.NewRecordsService(hrBackend),
		HealthChecks: healthChecks,
	})

	// Graceful shutdown
	go gracefulShutdown(app, log)

	// Start server
	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Str("store", cfg.Store.Driver).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// newEmailSender picks the code delivery for email identifiers
func newEmailSender(cfg config.MailConfig, log *logger.Logger) identity.Sender {
	switch cfg.Driver {
	case "postmark":
		return identity.NewPostmarkSender(cfg.PostmarkToken, cfg.From)
	case "smtp":
		return identity.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.From)
	default:
		return identity.NewLogSender(log)
	}
}

func redisCheck(rdb *redis.Client) handlers.HealthCheckFunc {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}
