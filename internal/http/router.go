package httpapi

import (
	"net/http"

	"salespulse-report-service/internal/config"
	"salespulse-report-service/internal/dataset"
	"salespulse-report-service/internal/http/handlers"
	"salespulse-report-service/internal/middleware"
	"salespulse-report-service/internal/report"
	"salespulse-report-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(
	data *dataset.Store,
	objects *storage.ObjectStore,
	logger *zap.Logger,
	cfg config.Config,
	closed report.ClosedHours,
	excluded report.HourSet,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			MaxAge: 300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{
		Data:     data,
		Objects:  objects,
		Logger:   logger,
		Config:   cfg,
		Closed:   closed,
		Excluded: excluded,
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/report", func(r chi.Router) {
			r.Get("/", h.ReportTable)
			r.Get("/chart", h.ReportChart)
			r.Get("/grid", h.ReportGrid)
			r.Get("/stats", h.ReportStats)
			r.Get("/meta", h.ReportMeta)
		})
		r.Route("/dataset", func(r chi.Router) {
			r.Post("/upload", h.DatasetUpload)
			r.Post("/reload", h.DatasetReload)
		})
	})

	return r
}
