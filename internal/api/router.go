package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/obrasys/backoffice/internal/api/handler"
	"github.com/obrasys/backoffice/internal/api/middleware"
	"github.com/obrasys/backoffice/internal/core/ports"
	"github.com/obrasys/backoffice/internal/core/service"
	mongodb "github.com/obrasys/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/obrasys/backoffice/internal/infrastructure/db/redis"
	"github.com/obrasys/backoffice/pkg/token"
)

// RouterDeps carries everything the router needs to assemble the service
// graph. The notifier is built by the caller so its worker lifecycle is
// owned by main, not by the router.
type RouterDeps struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Codec    *token.Codec
	Notifier ports.Notifier
	Logger   zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	budgetRepo := mongodb.NewBudgetRepository(deps.DB)
	invoiceRepo := mongodb.NewInvoiceRepository(deps.DB)
	appointmentRepo := mongodb.NewAppointmentRepository(deps.DB)
	diaryRepo := mongodb.NewDiaryRepository(deps.DB)
	documentRepo := mongodb.NewDocumentRepository(deps.DB)
	notificationRepo := mongodb.NewNotificationRepository(deps.DB)

	userCache := redisdb.NewUserCache(deps.Redis)

	// --- Services ---
	guard := service.NewGuard(deps.Codec, userRepo, userCache, deps.Logger)
	authService := service.NewAuthService(userRepo, deps.Codec, deps.Logger)
	userService := service.NewUserService(userRepo, userCache, deps.Notifier, deps.Logger)
	projectService := service.NewProjectService(projectRepo, deps.Logger)
	budgetService := service.NewBudgetService(budgetRepo, deps.Notifier, deps.Logger)
	invoiceService := service.NewInvoiceService(invoiceRepo, deps.Notifier, deps.Logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, deps.Notifier, deps.Logger)
	diaryService := service.NewDiaryService(diaryRepo, deps.Logger)
	documentService := service.NewDocumentService(documentRepo, deps.Logger)
	notificationService := service.NewNotificationService(notificationRepo, deps.Logger)
	reportService := service.NewReportService(projectRepo, budgetRepo, invoiceRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	diaryHandler := handler.NewDiaryHandler(diaryService)
	documentHandler := handler.NewDocumentHandler(documentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	authed := e.Group("/v1", middleware.Authenticate(guard))
	admin := middleware.RequireAdmin()

	authed.GET("/me", userHandler.Me)

	authed.GET("/users", userHandler.List, admin)
	authed.POST("/users", userHandler.Create, admin)
	authed.GET("/users/:id", userHandler.Get, admin)
	authed.PATCH("/users/:id/approve", userHandler.Approve, admin)
	authed.PATCH("/users/:id/promote", userHandler.Promote, admin)
	authed.PATCH("/users/:id/deactivate", userHandler.Deactivate, admin)

	authed.GET("/projects", projectHandler.List)
	authed.GET("/projects/:id", projectHandler.Get)
	authed.POST("/projects", projectHandler.Create, admin)
	authed.PUT("/projects/:id", projectHandler.Update, admin)
	authed.DELETE("/projects/:id", projectHandler.Delete, admin)

	authed.GET("/budgets", budgetHandler.List)
	authed.GET("/budgets/:id", budgetHandler.Get)
	authed.POST("/budgets", budgetHandler.Request)
	authed.POST("/budgets/:id/review", budgetHandler.Review, admin)
	authed.DELETE("/budgets/:id", budgetHandler.Delete, admin)

	authed.GET("/invoices", invoiceHandler.List)
	authed.GET("/invoices/:id", invoiceHandler.Get)
	authed.POST("/invoices", invoiceHandler.Create, admin)
	authed.POST("/invoices/:id/pay", invoiceHandler.MarkPaid, admin)
	authed.DELETE("/invoices/:id", invoiceHandler.Delete, admin)

	authed.GET("/appointments", appointmentHandler.List)
	authed.GET("/appointments/:id", appointmentHandler.Get)
	authed.POST("/appointments", appointmentHandler.Create)
	authed.PUT("/appointments/:id", appointmentHandler.Update)
	authed.DELETE("/appointments/:id", appointmentHandler.Delete)

	authed.GET("/diaries", diaryHandler.List)
	authed.GET("/diaries/:id", diaryHandler.Get)
	authed.POST("/diaries", diaryHandler.Create, admin)
	authed.PUT("/diaries/:id", diaryHandler.Update, admin)
	authed.DELETE("/diaries/:id", diaryHandler.Delete, admin)

	authed.GET("/documents", documentHandler.List)
	authed.GET("/documents/:id", documentHandler.Get)
	authed.POST("/documents", documentHandler.Create, admin)
	authed.DELETE("/documents/:id", documentHandler.Delete, admin)

	authed.GET("/notifications", notificationHandler.List)
	authed.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

	authed.GET("/reports/summary", reportHandler.Summary)

	return e
}
