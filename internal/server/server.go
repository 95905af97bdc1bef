// Package server exposes the report pipeline over HTTP. Transport concerns
// only: request decoding, error mapping, logging and the audit trail. All
// business logic lives in the pipeline and its collaborators.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/llm"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/pipeline"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/retrieval"
)

// Server wires the generator, searcher and pipeline into HTTP handlers.
type Server struct {
	gen      llm.Generator
	searcher *retrieval.Searcher
	runner   pipeline.Runner
	logger   *slog.Logger
	topK     int
	auditDir string // empty disables the audit trail
	started  time.Time
}

// Options configures a Server.
type Options struct {
	Generator llm.Generator
	Searcher  *retrieval.Searcher
	Logger    *slog.Logger
	TopK      int    // default passage count per request
	Currency  string // default reporting currency; empty means GBP
	AuditDir  string // data dir for the audit log; empty disables
}

// New creates a Server.
func New(opts Options) *Server {
	topK := opts.TopK
	if topK <= 0 {
		topK = retrieval.DefaultTopK
	}
	return &Server{
		gen:      opts.Generator,
		searcher: opts.Searcher,
		runner:   pipeline.Runner{Currency: opts.Currency},
		logger:   opts.Logger,
		topK:     topK,
		auditDir: opts.AuditDir,
		started:  time.Now(),
	}
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Get("/documents", s.handleDocuments)
		r.Post("/search", s.handleSearch)
		r.Post("/generate", s.handleGenerate)
	})
	return r
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.logger.Warn("request failed", "status", status, "code", code, "message", message)
	s.writeJSON(w, status, errorResponse{Error: message, Code: code})
}
