package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/arcanaland/bestiary/internal/animal"
	"github.com/arcanaland/bestiary/internal/page"
)

// Fetcher looks up animals by name
type Fetcher interface {
	FetchAnimals(ctx context.Context, name string) ([]animal.Record, error)
}

type Options struct {
	Fetcher Fetcher
	// Template is the page text containing page.Marker
	Template string
	// FilterKey is used when the request has no "by" parameter
	FilterKey string
	Logger    *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h := &animalsHandler{opts: opts}
	r.Get("/animals", h.serveHTTP)

	return r
}

type animalsHandler struct {
	opts Options
}

func (h *animalsHandler) serveHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("name")
	if name == "" {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}

	key := query.Get("by")
	if key == "" {
		key = h.opts.FilterKey
	}

	logger := h.opts.Logger.With(
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("name", name))

	records, err := h.opts.Fetcher.FetchAnimals(r.Context(), name)
	if err != nil {
		logger.Error("fetching animals", zap.Error(err))
		http.Error(w, "upstream request failed", http.StatusBadGateway)
		return
	}

	if value, ok := animal.ChooseFacet(animal.Facets(records, key), query.Get("filter")); ok {
		records = animal.Filter(records, key, value)
		logger.Debug("filter applied", zap.String("key", key), zap.String("value", value))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page.Build(h.opts.Template, records)))
}
