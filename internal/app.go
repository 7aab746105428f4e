// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	router "farmvora/internal/api"
	"farmvora/internal/api/handler"
	"farmvora/internal/api/middleware"
	"farmvora/internal/auth"
	"farmvora/internal/config"
	"farmvora/internal/metrics"
	"farmvora/internal/realtime"
	"farmvora/internal/repository"
	"farmvora/internal/repository/postgres"
	"farmvora/internal/service"
	"farmvora/internal/util"
	"farmvora/pkg/db"
)

// rateLimitSweep is how often idle rate limit buckets are dropped.
const rateLimitSweep = 10 * time.Minute

// Application holds all the initialized components of the application.
type Application struct {
	Config  *config.AppConfig
	Logger  *slog.Logger
	DB      *sqlx.DB
	Metrics *metrics.Metrics
	Hub     *realtime.Hub

	// Repositories
	ProjectRepository      repository.ProjectRepository
	InvestmentRepository   repository.InvestmentRepository
	BalanceRepository      repository.BalanceRepository
	NotificationRepository repository.NotificationRepository
	QuestionRepository     repository.QuestionRepository
	UpdateRepository       repository.WeeklyUpdateRepository
	ProfileRepository      repository.ProfileRepository
	FavoriteRepository     repository.FavoriteRepository
	Procedures             repository.ProcedureGateway

	// Services
	Notifier            *service.Notifier
	InvestmentService   service.InvestmentService
	ApprovalService     service.ApprovalService
	ProjectService      service.ProjectService
	QuestionService     service.QuestionService
	UpdateService       service.UpdateService
	NotificationService service.NotificationService
	ProfileService      service.ProfileService
	FavoriteService     service.FavoriteService

	// Change feed
	Listener *realtime.ListenerSource

	// HTTP API
	RateLimiter *middleware.RateLimiter
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if app.Config.MigrateOnStart {
		if err := db.Migrate(app.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		app.Logger.Info("Database migrations applied.")
	}

	app.Metrics = metrics.New()
	app.Hub = realtime.NewHub(app.Logger)

	// 4. Initialize Repositories
	app.ProjectRepository = postgres.NewProjectRepository()
	app.InvestmentRepository = postgres.NewInvestmentRepository()
	app.BalanceRepository = postgres.NewBalanceRepository()
	app.NotificationRepository = postgres.NewNotificationRepository()
	app.QuestionRepository = postgres.NewQuestionRepository()
	app.UpdateRepository = postgres.NewWeeklyUpdateRepository()
	app.ProfileRepository = postgres.NewProfileRepository()
	app.FavoriteRepository = postgres.NewFavoriteRepository()
	app.Procedures = postgres.NewProcedureGateway(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	store := service.Store{
		Beginner:   app.DB, // This is the DBTxBeginner
		Executor:   app.DB, // This is the DBExecutor
		BeginTx:    db.BeginTx,
		CommitTx:   db.CommitTx,
		RollbackTx: db.RollbackTx,
	}
	app.Notifier = service.NewNotifier(app.DB, app.NotificationRepository, app.Config.NotifyTimeout, app.Logger, app.Metrics)
	app.InvestmentService = service.NewInvestmentService(store, app.ProjectRepository, app.InvestmentRepository,
		app.BalanceRepository, app.Procedures, app.Metrics, app.Logger)
	app.ApprovalService = service.NewApprovalService(store, app.InvestmentRepository, app.Procedures,
		app.Notifier, app.Metrics, app.Logger)
	app.ProjectService = service.NewProjectService(store, app.ProjectRepository, app.Logger)
	app.QuestionService = service.NewQuestionService(store, app.ProjectRepository, app.QuestionRepository,
		app.Notifier, app.Logger)
	app.UpdateService = service.NewUpdateService(store, app.ProjectRepository, app.UpdateRepository,
		app.InvestmentRepository, app.Notifier, app.Logger)
	app.NotificationService = service.NewNotificationService(store, app.NotificationRepository)
	app.ProfileService = service.NewProfileService(store, app.ProfileRepository, app.Logger)
	app.FavoriteService = service.NewFavoriteService(store, app.ProjectRepository, app.FavoriteRepository)
	app.Logger.Info("Services initialized.")

	// 6. Change feed
	app.Listener = realtime.NewListenerSource(app.Config.DB.DSN(), app.Hub, app.Metrics, app.Logger)

	// 7. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Investments:   handler.NewInvestmentHandler(app.InvestmentService, app.Logger),
		Admin:         handler.NewAdminHandler(app.ApprovalService, app.Logger),
		Projects:      handler.NewProjectHandler(app.ProjectService, app.UpdateService, app.Logger),
		Questions:     handler.NewQuestionHandler(app.QuestionService, app.Logger),
		Notifications: handler.NewNotificationHandler(app.NotificationService, app.Logger),
		Payments:      handler.NewPaymentHandler(app.Config.PaystackPublicKey, app.Logger),
		Realtime:      handler.NewRealtimeHandler(app.Hub, app.InvestmentService, app.ApprovalService, app.Metrics, app.Logger),
		Profiles:      handler.NewProfileHandler(app.ProfileService, app.FavoriteService, app.Logger),
		Users:         handler.NewUserHandler(app.ProfileService, app.Logger),
	}
	authn := middleware.NewAuthenticator(auth.NewVerifier(app.Config.JWTSecret), app.Procedures, app.ProfileService, app.Logger)
	app.RateLimiter = middleware.NewRateLimiter(app.Config.RateLimitRPS, app.Config.RateLimitBurst, app.Logger)
	app.RateLimiter.StartCleanup(ctx, rateLimitSweep)
	app.HTTPHandler = router.NewRouter(handlers, authn, app.RateLimiter, app.Metrics, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// RunListener feeds the change hub until ctx is cancelled.
func (app *Application) RunListener(ctx context.Context) {
	if err := app.Listener.Run(ctx); err != nil {
		app.Logger.Error("Change listener stopped", "error", err)
	}
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Listener != nil {
		if err := app.Listener.Close(); err != nil {
			app.Logger.Warn("Failed to close change listener", "error", err)
		}
	}

	if app.Notifier != nil {
		done := make(chan struct{})
		go func() {
			app.Notifier.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			app.Logger.Warn("Pending notifications abandoned", "error", ctx.Err())
		}
	}

	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
