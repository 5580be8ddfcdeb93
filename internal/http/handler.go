package httpapp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cesargomez89/saavnsource/internal/catalog"
	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/http/dto"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

// TrackDecoder turns an encoded track back into its info.
type TrackDecoder interface {
	Decode(token string) (domain.TrackInfo, error)
}

type Handler struct {
	Manager *catalog.Manager
	Decoder TrackDecoder
	Metrics http.Handler
	Logger  *logger.Logger

	// SourceEnabled gates search and stream the same way Check gates load.
	SourceEnabled bool

	now func() time.Time
}

func NewHandler(m *catalog.Manager, dec TrackDecoder, metrics http.Handler, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		Manager: m,
		Decoder: dec,
		Metrics: metrics,
		Logger:  log.WithComponent("http"),

		SourceEnabled: true,
		now:           time.Now,
	}
}

// Router builds the complete chi router with middleware and routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(h.RequestLogger)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Healthz)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/v4", func(r chi.Router) {
		r.Get("/loadtracks", h.LoadTracks)
		r.Get("/check", h.Check)
		r.Get("/search", h.Search)
		r.Get("/stream", h.Stream)
		r.Get("/decodetrack", h.DecodeTrack)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.requestLogger(r).Error("Failed to encode response", "error", err)
		h.writeError(w, r, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", constants.MimeTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := dto.NewErrorResponse(status, http.StatusText(status), message, r.URL.Path, h.now())
	data, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", constants.MimeTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (h *Handler) writeValidation(w http.ResponseWriter, r *http.Request, errs []dto.ValidationError) {
	resp := dto.NewErrorResponse(http.StatusBadRequest, http.StatusText(http.StatusBadRequest), "", r.URL.Path, h.now()).
		WithValidation(errs)
	h.writeJSON(w, r, http.StatusBadRequest, resp)
}
