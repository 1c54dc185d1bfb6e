// Package httptransport assembles the public HTTP surface: the /api router,
// the shared middleware chain, CORS policy, and the Prometheus endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/metrics"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/middleware"
	submissionhandler "github.com/TdivyanshC/Swadeshi-Hind-Party/internal/submissions/handler"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/platform/httputil"
)

// Deps carries everything the router mounts. All fields except Metrics are
// required; a nil Metrics just disables latency observation (used in tests).
type Deps struct {
	Submissions *submissionhandler.Handler
	Pinger      Pinger
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	CORSOrigins []string
}

// NewRouter wires all public endpoints under /api plus the /metrics endpoint
// outside the API prefix.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(deps.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	health := newHealthHandler(deps.Pinger, deps.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/", handleRoot)
		api.Get("/health", health.handleHealth)
		deps.Submissions.Register(api)
	})

	return r
}

// handleRoot is the API identity endpoint.
func handleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Swadeshi Hindu Party API",
		"status":  "active",
	})
}
