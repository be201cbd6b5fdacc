// Package api exposes layout computation over HTTP.
//
// The surface is deliberately small: POST /v1/layout computes a layout for a
// JSON graph, GET /v1/algorithms lists the strategies, and GET /healthz
// answers liveness probes. The service is stateless - nothing is persisted
// between requests.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/graphscape/graphscape/pkg/config"
	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/layout"
)

// maxBodyBytes bounds request bodies; graphs in the supported size range are
// far below this.
const maxBodyBytes = 4 << 20

// Server handles layout requests over HTTP.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	router chi.Router
}

// NewServer creates an API server with the given tuning config and logger.
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/algorithms", s.handleAlgorithms)
	r.Post("/v1/layout", s.handleLayout)
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// =============================================================================
// Request/Response Types
// =============================================================================

// LayoutRequest is the POST /v1/layout body. Graph takes the same loose
// shape the normalizer accepts; a malformed graph degrades to an empty one
// rather than failing the request.
type LayoutRequest struct {
	Graph     json.RawMessage `json:"graph"`
	Algorithm string          `json:"algorithm,omitempty"`
	Width     float64         `json:"width,omitempty"`
	Height    float64         `json:"height,omitempty"`
}

// LayoutResponse is the POST /v1/layout response.
type LayoutResponse struct {
	Layout layout.Result `json:"layout"`
	Nodes  int           `json:"nodes"`
	Edges  int           `json:"edges"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": layout.Algorithms()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "read body: %v", err))
		return
	}

	var req LayoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = layout.AlgorithmCircular
	}

	opts := s.cfg.LayoutOptions()
	opts.Logger = s.logger
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}

	g := graph.Normalize(req.Graph)
	res, err := layout.Compute(algorithm, g, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, LayoutResponse{
		Layout: res,
		Nodes:  g.NodeCount(),
		Edges:  g.EdgeCount(),
	})
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags every request with a UUID, echoed in X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"id", requestIDFrom(r.Context()),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

// =============================================================================
// Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
