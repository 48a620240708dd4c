package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/httpx/response"
	"github.com/RichDInfGrp/FimiliarVis/internal/render"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Pipeline defines the orchestrator operations the handler needs.
// Interface is defined by consumer (handler), not provider (policy)
type Pipeline interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
	Documents(ctx context.Context) (*render.Set, error)
}

// DataHandler serves the derived dashboard documents.
type DataHandler struct {
	pipeline Pipeline
}

// NewDataHandler creates a new data handler
func NewDataHandler(p Pipeline) *DataHandler {
	return &DataHandler{pipeline: p}
}

// RegisterRoutes registers data routes
func (h *DataHandler) RegisterRoutes(r chi.Router) {
	r.Route("/data", func(r chi.Router) {
		r.Get("/", h.List())
		r.Get("/{document}", h.Document())
	})
	r.Get("/kpis", h.named("kpis"))
	r.Get("/meta", h.Meta())
}

// List handles GET /data — the available document names.
func (h *DataHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{"documents": render.Names})
	}
}

// Document handles GET /data/{document}
func (h *DataHandler) Document() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serveDocument(w, r, chi.URLParam(r, "document"))
	}
}

func (h *DataHandler) named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serveDocument(w, r, name)
	}
}

func (h *DataHandler) serveDocument(w http.ResponseWriter, r *http.Request, name string) {
	docs, err := h.pipeline.Documents(r.Context())
	if err != nil {
		writePipelineError(w, err)
		return
	}
	body, ok := docs.Get(name)
	if !ok {
		response.NotFound(w, "unknown document: "+name)
		return
	}
	response.Raw(w, http.StatusOK, body)
}

// Meta handles GET /meta — identity of the snapshot currently served.
func (h *DataHandler) Meta() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.pipeline.Snapshot(r.Context())
		if err != nil {
			writePipelineError(w, err)
			return
		}
		response.OK(w, map[string]any{
			"run_id":      snap.RunID,
			"built_at":    snap.BuiltAt,
			"contacts":    len(snap.Contacts),
			"engagements": len(snap.Engagements),
			"posts":       len(snap.Posts),
			"documents":   render.Names,
		})
	}
}

// writePipelineError maps pipeline errors to status codes: structural source
// problems are reported as 503 (the service cannot produce data until the
// operator fixes the export drop), everything else as 500.
func writePipelineError(w http.ResponseWriter, err error) {
	var notFound *source.SourceNotFoundError
	var malformed *source.MalformedRecordError
	if errors.As(err, &notFound) || errors.As(err, &malformed) {
		response.Error(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	response.InternalError(w, err.Error())
}
