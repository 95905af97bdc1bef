package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/auditlog"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/buildinfo"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/extract"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/pipeline"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/template"
)

type generateRequest struct {
	Query        string `json:"query"`
	TopK         int    `json:"k"`
	ExportFormat string `json:"export_format,omitempty"`
}

type generateResponse struct {
	Status     string    `json:"status"`
	RequestID  string    `json:"request_id"`
	Timestamp  time.Time `json:"timestamp"`
	ExportData string    `json:"export_data,omitempty"`
	pipeline.Result
}

type searchRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "COREP own funds reporting assistant API",
		"version": buildinfo.Version,
		"status":  "running",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"documents_loaded": len(s.searcher.Documents()),
		"template":         model.TemplateID,
		"uptime_seconds":   int(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"documents_loaded": len(s.searcher.Documents()),
	})
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"templates": []map[string]string{
			{
				"id":          model.TemplateID,
				"name":        "Own Funds",
				"description": "Own funds composition (CET1, AT1, Tier 2)",
				"status":      "active",
			},
		},
	})
}

func (s *Server) handleDocuments(w http.ResponseWriter, _ *http.Request) {
	docs := s.searcher.Documents()
	out := make([]map[string]any, 0, len(docs))
	for i, d := range docs {
		out = append(out, map[string]any{
			"id":     i,
			"source": d.Source,
			"length": len(d.Text),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, "bad_request", "query is required")
		return
	}

	results := s.searcher.Search(req.Query, req.K)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"query":       req.Query,
		"results":     results,
		"total_found": len(results),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, "bad_request", "query is required")
		return
	}

	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)
	logger.Info("generate request", "query_len", len(req.Query))

	topK := req.TopK
	if topK <= 0 {
		topK = s.topK
	}
	passages := s.searcher.Search(req.Query, topK)

	raw, err := s.gen.Generate(r.Context(), req.Query, passages)
	if err != nil {
		logger.Error("generator failed", "error", err)
		s.audit(requestID, "generate", "internal_error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "generator_failed", "could not interpret the query")
		return
	}

	result, err := s.runner.Run(raw, passages)
	if err != nil {
		var exErr *extract.ExtractionError
		if errors.As(err, &exErr) {
			logger.Info("extraction failed", "code", exErr.Code)
			s.audit(requestID, "generate", "extraction_failed", exErr.Code)
			s.writeError(w, http.StatusUnprocessableEntity, exErr.Code,
				"no usable capital figures found; restate the amounts explicitly")
			return
		}
		// Mapping and validation are total over a valid record; anything
		// else here is a defect, not a user problem.
		logger.Error("pipeline failed", "error", err)
		s.audit(requestID, "generate", "internal_error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "internal_error", "internal pipeline error")
		return
	}

	exportData := ""
	if req.ExportFormat != "" {
		exportData, err = template.Export(result.Record, result.Rows, req.ExportFormat)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "bad_export_format", err.Error())
			return
		}
	}

	s.audit(requestID, "generate", "success",
		fmt.Sprintf("flags=%d status=%s", result.Report.Summary.TotalFlags, result.Report.Summary.Status))
	logger.Info("generate complete",
		"flags", result.Report.Summary.TotalFlags,
		"status", result.Report.Summary.Status)

	s.writeJSON(w, http.StatusOK, generateResponse{
		Status:     "success",
		RequestID:  requestID,
		Timestamp:  time.Now().UTC(),
		ExportData: exportData,
		Result:     result,
	})
}

// audit appends one audit-log entry; failures are logged, never surfaced.
func (s *Server) audit(requestID, action, status, detail string) {
	if s.auditDir == "" {
		return
	}
	entry := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
		Action:    action,
		Status:    status,
		Detail:    detail,
	}
	if err := auditlog.Append(s.auditDir, []auditlog.Entry{entry}); err != nil {
		s.logger.Warn("audit append failed", "error", err)
	}
}
