package rest

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/rs/cors"

	"github.com/ewilliams-labs/lumiya/internal/core/services"
)

// Options configures the HTTP surface.
type Options struct {
	StaticDir      string   // directory holding index.html and assets
	AllowedOrigins []string // CORS origins, "*" allows all
}

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc       *services.Orchestrator // Dependency on the Core Service
	router    *http.ServeMux         // Standard library router
	staticDir string
	chain     http.Handler
}

// NewHandler initializes the HTTP adapter, sets up routes and wraps them in middleware.
func NewHandler(svc *services.Orchestrator, opts Options) *Handler {
	h := &Handler{
		svc:       svc,
		router:    http.NewServeMux(),
		staticDir: opts.StaticDir,
	}

	// Register Routes
	h.routes()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	sentryMiddleware := sentryhttp.New(sentryhttp.Options{Repanic: true})

	// Outermost first: CORS, request id, access log, recovery, Sentry, router.
	h.chain = corsMiddleware.Handler(
		withRequestID(
			withAccessLog(
				withRecover(
					sentryMiddleware.Handle(h.router),
				),
			),
		),
	)

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Mood endpoints
	h.router.HandleFunc("POST /api/recommend_by_emoji", h.RecommendByEmoji)
	h.router.HandleFunc("POST /api/analyze_diary", h.AnalyzeDiary)
	// Frontend
	h.router.Handle("GET /", h.staticFiles())
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Lumiya is live 🎶"})
}
