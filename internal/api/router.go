// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"farmvora/internal/api/handler"
	mw "farmvora/internal/api/middleware"
	"farmvora/internal/metrics"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Investments   *handler.InvestmentHandler
	Admin         *handler.AdminHandler
	Projects      *handler.ProjectHandler
	Questions     *handler.QuestionHandler
	Notifications *handler.NotificationHandler
	Payments      *handler.PaymentHandler
	Realtime      *handler.RealtimeHandler
	Profiles      *handler.ProfileHandler
	Users         *handler.UserHandler
}

// NewRouter sets up and returns a new HTTP router. m may be nil.
func NewRouter(h Handlers, authn *mw.Authenticator, limiter *mw.RateLimiter, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID) // Add a request ID to the context
	r.Use(middleware.RealIP)    // Use the real IP address
	r.Use(middleware.Logger)    // Log HTTP requests
	r.Use(middleware.Recoverer) // Recover from panics and return 500
	r.Use(m.Instrument)
	r.Use(authn.Handler)
	if limiter != nil {
		r.Use(limiter.Handler)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// The stream outlives the request timeout.
	r.With(mw.RequireAuth).Get("/ws/investments", h.Realtime.Investments)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(handler.DefaultTimeout))

		r.Get("/currencies", h.Projects.Currencies)

		// Public project catalogue
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Projects.List)
			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", h.Projects.Get)
				r.Get("/updates", h.Projects.ListUpdates)
				r.Get("/questions", h.Questions.ListApproved)

				r.Group(func(r chi.Router) {
					r.Use(mw.RequireAuth)
					r.Post("/questions", h.Questions.Ask)
					r.Post("/investments", h.Investments.Submit)
					r.Get("/investments/mine", h.Investments.ListMineForProject)
					r.Get("/favorite", h.Profiles.FavoriteStatus)
					r.Post("/favorite", h.Profiles.ToggleFavorite)
				})
			})
		})

		// Investor routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)
			r.Get("/investments/mine", h.Investments.ListMine)
			r.Get("/investments/portfolio", h.Investments.Portfolio)
			r.Post("/investments/{investmentID}/withdraw", h.Investments.Withdraw)

			r.Get("/notifications", h.Notifications.List)
			r.Post("/notifications/{notificationID}/read", h.Notifications.MarkRead)

			r.Post("/payments/checkout", h.Payments.Checkout)

			r.Get("/profile", h.Profiles.Get)
			r.Put("/profile", h.Profiles.Update)
			r.Get("/favorites", h.Profiles.ListFavorites)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireAdmin)

			r.Route("/investments", func(r chi.Router) {
				r.Get("/", h.Admin.ListAll)
				r.Get("/pending", h.Admin.ListPending)
				r.Get("/ledger", h.Admin.Ledger)
				r.Post("/{investmentID}/approve", h.Admin.Approve)
				r.Post("/{investmentID}/reject", h.Admin.Reject)
				r.Delete("/{investmentID}", h.Admin.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.Projects.Create)
				r.Put("/{projectID}", h.Projects.Update)
				r.Patch("/{projectID}/status", h.Projects.UpdateStatus)
				r.Delete("/{projectID}", h.Projects.Delete)
				r.Post("/{projectID}/updates", h.Projects.CreateUpdate)
			})

			r.Route("/questions", func(r chi.Router) {
				r.Get("/pending", h.Questions.ListPending)
				r.Post("/{questionID}/approve", h.Questions.Approve)
				r.Post("/{questionID}/reject", h.Questions.Reject)
				r.Post("/{questionID}/answer", h.Questions.Answer)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Users.List)
				r.Put("/{userID}", h.Users.Edit)
				r.Post("/{userID}/suspend", h.Users.Suspend)
				r.Post("/{userID}/unsuspend", h.Users.Unsuspend)
				r.Delete("/{userID}", h.Users.Delete)
			})
		})
	})

	logger.Info("HTTP routes registered")
	return r
}
