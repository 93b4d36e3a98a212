package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rogerio-castellano/smart-retail-ops/internal/http/handlers"
	mw "github.com/rogerio-castellano/smart-retail-ops/internal/http/middleware"
	rl "github.com/rogerio-castellano/smart-retail-ops/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/smart-retail-ops/docs"
)

type Options struct {
	AllowedOrigins []string
	// TrustProxy rewrites the client address from forwarding headers before
	// rate limiting. Leave it off unless a reverse proxy sets them.
	TrustProxy bool
	// Limiter throttles item creation; nil disables it.
	Limiter *rl.Limiter
}

func NewRouter(h *handlers.Handler, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Content-Disposition"},
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// HTML pages
	r.Get("/", h.IndexPage)
	r.Get("/dashboard", h.DashboardPage)
	r.Get("/threshold", h.ThresholdPage)
	r.Post("/threshold", h.ThresholdPage)
	r.Get("/inventory-management", h.InventoryManagementPage)
	r.With(mw.RateLimit(opts.Limiter)).Post("/inventory-management", h.InventoryManagementPage)
	r.Get("/threshold-list", h.ThresholdListPage)
	r.Post("/export", h.ExportFormHandler)
	r.Post("/export-report", h.ExportReportFormHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.GetItemsHandler)
			r.With(mw.RateLimit(opts.Limiter)).Post("/", h.CreateItemHandler)
			r.With(mw.RateLimit(opts.Limiter)).Post("/import", h.ImportItemsHandler)
		})
		r.Route("/thresholds", func(r chi.Router) {
			r.Get("/", h.GetThresholdsHandler)
			r.Put("/", h.SetThresholdHandler)
			r.Get("/status", h.GetThresholdStatusHandler)
		})
		r.Get("/classifications", h.GetRecentClassificationsHandler)
		r.Get("/metrics/dashboard", h.GetDashboardMetricsHandler)
		r.Get("/reports", h.GetReportHandler)
		r.Get("/export", h.GetExportHandler)
	})

	return r
}
