package routes

import (
	"time"

	"hrdesk/internal/adapters/http/handlers"
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/config"
	"hrdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Deps are the services the HTTP layer serves
type Deps struct {
	Registry      *services.WorkspaceRegistry
	Dashboard     *services.DashboardService
	Leave         *services.LeaveService
	Loan          *services.LoanService
	Attendance    *services.AttendanceService
	Records       *services.RecordsService
	HealthChecks  map[string]handlers.HealthCheckFunc
	CountdownTick time.Duration
}

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config, deps Deps) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, deps.HealthChecks)
	authHandler := handlers.NewAuthHandler(deps.CountdownTick)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Attendance)
	leaveHandler := handlers.NewLeaveHandler(deps.Leave)
	loanHandler := handlers.NewLoanHandler(deps.Loan)
	recordsHandler := handlers.NewRecordsHandler(deps.Records)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group, every request is bound to its browser workspace
	apiV1 := app.Group("/api/v1", middleware.Workspace(deps.Registry, cfg.Cookie))
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := apiV1.Group("/auth", middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler)

	// Authenticated routes
	setupDashboardRoutes(apiV1, dashboardHandler)
	setupAttendanceRoutes(apiV1, attendanceHandler)
	setupLeaveRoutes(apiV1, leaveHandler)
	setupLoanRoutes(apiV1, loanHandler)
	setupRecordsRoutes(apiV1, recordsHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)
	router.Get("/state", handler.State)
	router.Get("/me", middleware.AllowRegistrationSession(), handler.Me)
	router.Post("/role", handler.SelectRole)

	// Registration
	router.Post("/register/otp", middleware.AuthRateLimiter(), handler.RequestRegistrationOtp)
	router.Post("/register/verify", middleware.AuthRateLimiter(), handler.VerifyRegistrationOtp)
	router.Post("/register/password", middleware.AllowRegistrationSession(), handler.CompleteRegistration)

	// Code challenge
	router.Get("/otp", handler.Challenge)
	router.Delete("/otp", handler.CancelChallenge)
	router.Get("/otp/countdown", handler.Countdown)
	router.Post("/otp/resend", handler.ResendOtp)

	// Password
	router.Post("/password/validate", handler.ValidatePassword)
	router.Post("/password/forgot", middleware.StrictRateLimiter(), handler.ForgotPassword)
	router.Post("/password/reset", middleware.AuthRateLimiter(), handler.ResetPassword)
}

// setupDashboardRoutes configures dashboard routes (protected)
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	dashboard := router.Group("/dashboard", middleware.RequireSession())
	dashboard.Get("/employee", handler.GetEmployeeDashboard)
	dashboard.Get("/admin", middleware.SuperAdminOnly(), handler.GetAdminDashboard)

	events := router.Group("/events", middleware.RequireSession())
	events.Get("/next", middleware.PrivateCacheHeaders(time.Minute), handler.GetNextEvent)
}

// setupAttendanceRoutes configures attendance routes (protected)
func setupAttendanceRoutes(router fiber.Router, handler *handlers.AttendanceHandler) {
	attendance := router.Group("/attendance", middleware.RequireSession())
	attendance.Get("/", handler.List)
}

// setupLeaveRoutes configures leave routes (protected)
func setupLeaveRoutes(router fiber.Router, handler *handlers.LeaveHandler) {
	leave := router.Group("/leave", middleware.RequireSession())
	leave.Get("/", handler.List)
	leave.Get("/balance", handler.Balance)
	leave.Post("/", handler.Submit)
	leave.Put("/:id/status", handler.Decide)
	leave.Delete("/:id", handler.Cancel)
}

// setupLoanRoutes configures loan routes (protected)
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	loans := router.Group("/loans", middleware.RequireSession())
	loans.Get("/", handler.List)
	loans.Post("/", handler.Request)
	loans.Get("/quote", handler.Quote)
	loans.Get("/:number/schedule", handler.Schedule)
	loans.Put("/:number/approve", middleware.SuperAdminOnly(), handler.Approve)
}

// setupRecordsRoutes configures payroll, training, performance, notification and employee routes (protected)
func setupRecordsRoutes(router fiber.Router, handler *handlers.RecordsHandler) {
	router.Get("/payroll", middleware.RequireSession(), middleware.PrivateCacheHeaders(5*time.Minute), handler.Payroll)
	router.Get("/training", middleware.RequireSession(), handler.Training)
	router.Get("/performance", middleware.RequireSession(), handler.Performance)

	notifications := router.Group("/notifications", middleware.RequireSession())
	notifications.Get("/", handler.Notifications)
	notifications.Put("/:id/read", handler.MarkNotificationRead)

	employees := router.Group("/employees", middleware.RequireSession())
	employees.Get("/", middleware.SuperAdminOnly(), handler.Employees)
	employees.Get("/:id", handler.Employee)
}
