package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/hexcomb"
	"github.com/aretw0/hexcomb/pkg/domain"
)

// Solver defines the interface for the puzzle solving core.
type Solver interface {
	Solve(ctx context.Context, p domain.Puzzle) (*domain.Result, error)
	WordCount() int
}

// Server exposes a Solver over HTTP.
type Server struct {
	solver  Solver
	metrics *metrics
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver Solver) http.Handler {
	server := &Server{
		solver:  solver,
		metrics: newMetrics(),
	}
	r := chi.NewRouter()

	r.Post("/solve", server.Solve)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SolveRequest is the POST /solve request body.
type SolveRequest struct {
	Layers  int    `json:"layers"`
	Symbols string `json:"symbols"`
}

// SolveResponse is the POST /solve response body.
type SolveResponse struct {
	Words      []string `json:"words"`
	Count      int      `json:"count"`
	DurationMs float64  `json:"duration_ms"`
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Solve: Invalid request body", "error", err)
		s.metrics.requests.WithLabelValues("400").Inc()
		return
	}

	start := time.Now()
	res, err := s.solver.Solve(r.Context(), domain.Puzzle{
		Layers:  body.Layers,
		Symbols: body.Symbols,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if puzzleRejected(err) {
			status = http.StatusBadRequest
			slog.Warn("Solve: Puzzle rejected", "error", err)
		} else {
			slog.Error("Solve failed", "error", err)
		}
		http.Error(w, fmt.Sprintf("Solve error: %v", err), status)
		s.metrics.requests.WithLabelValues(strconv.Itoa(status)).Inc()
		return
	}
	elapsed := time.Since(start)

	s.metrics.requests.WithLabelValues("200").Inc()
	s.metrics.duration.Observe(elapsed.Seconds())
	s.metrics.wordsFound.Observe(float64(res.Len()))

	words := res.Sorted()
	resp := SolveResponse{
		Words:      words,
		Count:      len(words),
		DurationMs: float64(elapsed.Microseconds()) / 1000.0,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Solve response encode failed", "error", err)
	}
}

// puzzleRejected reports whether the error is a client-side puzzle problem
// rather than a server fault.
func puzzleRejected(err error) bool {
	return errors.Is(err, domain.ErrLayerCount) ||
		errors.Is(err, domain.ErrSymbolCount) ||
		errors.Is(err, domain.ErrInvalidSymbol)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":        "hexcomb-http",
		"version":    strings.TrimSpace(hexcomb.Version),
		"dictionary": strconv.Itoa(s.solver.WordCount()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
