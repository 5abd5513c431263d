package switchback

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/observability"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/prometheus/client_golang/prometheus"
)

// Version of the Switchback library and CLI.
const Version = "0.3.0"

// Solution is the outcome of a successful search.
type Solution struct {
	Initial toggle.State
	Final   toggle.State
	Moves   []domain.Move
	Stats   search.Stats
}

// Solver is the high-level entry point for solving toggle puzzles.
// It wraps the generic search engine and wires logging and metrics.
type Solver struct {
	hooks     []search.Hooks[toggle.State]
	logger    *slog.Logger
	registry  prometheus.Registerer
	metrics   *observability.Metrics
	maxStates int
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLifecycleHooks registers observability hooks. It may be given several times.
func WithLifecycleHooks(hooks search.Hooks[toggle.State]) Option {
	return func(s *Solver) {
		s.hooks = append(s.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithMetrics registers search metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Solver) {
		s.registry = reg
	}
}

// WithMaxStates caps the number of distinct states explored. Zero means unlimited.
func WithMaxStates(n int) Option {
	return func(s *Solver) {
		s.maxStates = n
	}
}

// New initializes a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized so the engine never receives nil
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if s.registry != nil {
		s.metrics = observability.NewMetrics(s.registry)
		s.hooks = append(s.hooks, observability.SearchHooks[toggle.State](s.metrics))
	}

	return s
}

// Metrics returns the collectors registered by WithMetrics, or nil.
func (s *Solver) Metrics() *observability.Metrics {
	return s.metrics
}

// Solve finds a shortest move sequence from initial to a terminal state.
// It returns false when no solution exists (or the state cap was reached).
func (s *Solver) Solve(initial toggle.State) (Solution, bool) {
	sol, res := s.Run(initial)
	return sol, res.Found
}

// Run is like Solve but also returns the raw search result,
// which tells a truncated search apart from an exhausted one.
func (s *Solver) Run(initial toggle.State) (Solution, search.Result[toggle.State]) {
	b := initial.Board()
	logger := s.logger.With(
		"board", fmt.Sprintf("%dx%d", b.Width(), b.Height()),
		"polarity", b.Polarity().String(),
	)

	opts := []search.Option[toggle.State]{
		search.WithLogger[toggle.State](logger),
		search.WithMaxStates[toggle.State](s.maxStates),
	}
	for _, h := range s.hooks {
		opts = append(opts, search.WithHooks(h))
	}

	res := search.New[toggle.State, domain.Move](opts...).Run(initial)
	sol := Solution{
		Initial: initial,
		Stats:   res.Stats,
	}
	if res.Found {
		sol.Final = res.State
		sol.Moves = res.State.History()
	}
	return sol, res
}
