package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-wizard/internal/core/port"
	"campaign-wizard/internal/metrics"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 10 << 20

// Services are the use cases exposed over HTTP.
type Services struct {
	Photos    port.PhotoSelector
	Campaigns port.CampaignGenerator
	Speech    port.SpeechUseCase
	Workflow  port.WorkflowUseCase
	State     port.StateUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: every route decodes JSON, calls one use case and encodes the result.
// All routes answer CORS preflights.
type Handler struct {
	svc         Services
	logger      *slog.Logger
	metrics     *metrics.Metrics
	metricsPath string
	filesDir    string
	router      chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics records request metrics on m and serves them at path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

// WithFiles serves dir under /files/. Used with the local storage driver.
func WithFiles(dir string) Option {
	return func(h *Handler) { h.filesDir = dir }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Use(h.metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/campaign/create", h.handleCampaignCreate)
		r.Post("/campaign/publish", h.handleCampaignPublish)
		r.Post("/campaign/generate", h.handleCampaignGenerate)
		r.Get("/campaign/{id}", h.handleCampaignGet)
		r.Post("/workflow/stock-photos", h.handleStockPhotos)
		r.Post("/tts/synthesize", h.handleSynthesize)
	})
	r.Post("/store", h.handleStateStore)
	r.Get("/retrieve", h.handleStateRetrieve)
	r.Get("/healthz", h.handleHealth)

	if h.metrics != nil && h.metricsPath != "" {
		r.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}
	if h.filesDir != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(h.filesDir))))
	}

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
