package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/dto"
	"github.com/aretw0/switchback/internal/presentation/graph"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solver defines the search entry point used by the handlers.
type Solver interface {
	Run(initial toggle.State) (switchback.Solution, search.Result[toggle.State])
}

// Server exposes the puzzle catalog and the solver as a JSON API.
type Server struct {
	solver Solver
	logger *slog.Logger

	// Metric hooks observe one search at a time.
	mu sync.Mutex
}

// NewHandler creates the HTTP handler. When gatherer is non-nil its metrics
// are served on /metrics.
func NewHandler(solver Solver, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{solver: solver, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/puzzles", s.ListPuzzles)
	r.Route("/puzzles/{name}", func(r chi.Router) {
		r.Get("/", s.GetPuzzle)
		r.Get("/solution", s.GetSolution)
		r.Get("/graph", s.GetGraph)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListPuzzles handles GET /puzzles.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	out, err := dto.Catalog()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, out)
}

// GetPuzzle handles GET /puzzles/{name}.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := catalog.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	d, err := dto.PuzzleFrom(p)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, d)
}

// GetSolution handles GET /puzzles/{name}/solution?order=down,right,up,left.
func (s *Server) GetSolution(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	initial, err := load(r, name)
	if err != nil {
		s.fail(w, err)
		return
	}

	sol, res := s.run(initial)
	s.writeJSON(w, dto.SolutionFrom(name, sol, res.Truncated))
}

// GetGraph handles GET /puzzles/{name}/graph and returns a Mermaid diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	initial, err := load(r, name)
	if err != nil {
		s.fail(w, err)
		return
	}

	sol, _ := s.run(initial)
	if !sol.Stats.Found {
		http.Error(w, fmt.Sprintf("puzzle %s has no solution", name), http.StatusUnprocessableEntity)
		return
	}
	out, err := graph.GenerateMermaid(initial, sol.Moves)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, out)
}

func (s *Server) run(initial toggle.State) (switchback.Solution, search.Result[toggle.State]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver.Run(initial)
}

func load(r *http.Request, name string) (toggle.State, error) {
	var names []string
	if raw := r.URL.Query().Get("order"); raw != "" {
		names = strings.Split(raw, ",")
	}
	order, err := domain.ParseOrder(names)
	if err != nil {
		return toggle.State{}, err
	}
	return catalog.Load(name, order)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrUnknownPuzzle):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidMove):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
