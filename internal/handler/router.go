package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/meeting-minutes/backend/internal/handler/email"
	"github.com/zhouzirui/meeting-minutes/backend/internal/handler/summary"
	middlewarePkg "github.com/zhouzirui/meeting-minutes/backend/internal/middleware"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/utils"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/validation"
)

// Services bundles what the router dispatches to.
type Services struct {
	Summary summary.Generator
	Email   email.Sender
	// Health reports which integrations are configured; nil reports none.
	Health func() HealthStatus
}

// HealthStatus is the GET /api/health body.
type HealthStatus struct {
	Status          string `json:"status"`
	SummaryProvider bool   `json:"summaryProvider"`
	Mail            bool   `json:"mail"`
}

// NewRouter wires HTTP routes to core services.
func NewRouter(svcs Services, allowedOrigins []string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger.With("component", "http")))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	validator := validation.New()
	summaryHandler := summary.New(svcs.Summary, validator, logger.With("component", "summary-handler"))
	emailHandler := email.New(svcs.Email, validator, logger.With("component", "email-handler"))

	r.Route("/api", func(api chi.Router) {
		summaryHandler.RegisterRoutes(api)
		emailHandler.RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			status := HealthStatus{}
			if svcs.Health != nil {
				status = svcs.Health()
			}
			status.Status = "ok"
			utils.RespondJSON(w, http.StatusOK, status)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
