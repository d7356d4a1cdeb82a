package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "meetspace/docs"
	"meetspace/internal/delivery/http/controllers"
	"meetspace/internal/delivery/http/middleware"
	"meetspace/internal/domain"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger      *slog.Logger
	Auth        *controllers.AuthController
	Events      *controllers.EventController
	Health      *controllers.HealthController
	Credentials domain.CredentialService
	Registry    *prometheus.Registry
	CORSOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it with metrics, request logging and CORS.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	anyTier := middleware.RequireAPIKey(d.Credentials, d.Logger)
	writer := func(next http.HandlerFunc) http.HandlerFunc {
		return anyTier(middleware.RequireTier(d.Logger, domain.TierReadWrite)(next))
	}

	// API Routes
	mux.HandleFunc("POST /v1/auth/register", d.Auth.Register)
	mux.HandleFunc("GET /v1/events/nearby", anyTier(d.Events.Nearby))
	mux.HandleFunc("GET /v1/events/{eventID}", anyTier(d.Events.Get))
	mux.HandleFunc("POST /v1/events", writer(d.Events.Create))

	// Operations
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	metrics := middleware.NewMetrics(d.Registry)
	return metrics.Middleware(middleware.LoggingMiddleware(d.Logger, middleware.CORS(d.CORSOrigins, mux)))
}
