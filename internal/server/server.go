// Package server exposes the grading pipeline over HTTP. Requests are
// stateless: nothing is persisted between calls.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/analyze"
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/pipeline"
)

// Server handles grading requests
type Server struct {
	pipeline *pipeline.Pipeline
	version  string
}

// New creates a server around a pipeline
func New(p *pipeline.Pipeline, version string) *Server {
	return &Server{pipeline: p, version: version}
}

// analyzeRequest is the POST /api/analyze body
type analyzeRequest struct {
	InputType  string `json:"input_type"` // url, html, text
	Content    string `json:"content"`
	SourceURL  string `json:"source_url,omitempty"` // base for html input
	AuthorName string `json:"author_name,omitempty"`
	SiteName   string `json:"site_name,omitempty"`
	Preset     string `json:"preset,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/presets", s.handlePresets)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// ListenAndServe runs the server until the listener fails
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Fprintf(os.Stderr, "listening on %s\n", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}

	opts := analyze.Options{
		PresetName: req.Preset,
		AuthorName: req.AuthorName,
		SiteName:   req.SiteName,
	}

	var (
		report *model.AnalysisReport
		err    error
	)
	switch strings.ToLower(req.InputType) {
	case "url":
		report, err = s.pipeline.GradeURLWithOptions(r.Context(), req.Content, opts)
	case "html":
		report, err = s.pipeline.GradeHTML(r.Context(), req.Content, req.SourceURL, opts)
	case "text":
		report, err = s.pipeline.GradeText(r.Context(), req.Content, opts)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown input_type %q (want url, html, or text)", req.InputType))
		return
	}

	if err != nil {
		if model.IsInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// presetInfo is the public shape of a preset
type presetInfo struct {
	Name    string             `json:"name"`
	Label   string             `json:"label"`
	Weights map[string]float64 `json:"weights"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	var infos []presetInfo
	for _, p := range s.pipeline.Registry().All() {
		weights := make(map[string]float64, len(p.Weights))
		for dim, weight := range p.Weights {
			weights[string(dim)] = weight
		}
		infos = append(infos, presetInfo{Name: p.Name, Label: p.Label, Weights: weights})
	}

	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
