package search

import (
	"io"
	"log/slog"

	"github.com/aretw0/switchback/pkg/domain"
)

// Stats summarizes one search run.
type Stats struct {
	Expanded    int  // States dequeued and expanded
	Generated   int  // New states added to the visited set (initial included)
	Rejected    int  // Actions for which Apply reported no successor
	Duplicates  int  // Successors already present in the visited set
	MaxFrontier int  // Peak frontier size
	Visited     int  // Final size of the visited set
	Depth       int  // History length of the solution, 0 when not found
	Found       bool // A terminal state was reached
}

// Result is the outcome of Engine.Run.
type Result[S any] struct {
	State S
	Found bool

	// Truncated is set when the search stopped because WithMaxStates was hit.
	Truncated bool

	Stats Stats
}

// Engine is the breadth-first solver.
type Engine[S domain.State[S, A], A any] struct {
	hooks     []Hooks[S]
	logger    *slog.Logger
	maxStates int
}

// Option defines a functional option for configuring the Engine.
type Option[S any] func(*options[S])

type options[S any] struct {
	hooks     []Hooks[S]
	logger    *slog.Logger
	maxStates int
}

// WithHooks registers observability hooks. It may be given several times.
func WithHooks[S any](hooks Hooks[S]) Option[S] {
	return func(o *options[S]) {
		o.hooks = append(o.hooks, hooks)
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(o *options[S]) {
		o.logger = logger
	}
}

// WithMaxStates caps the size of the visited set. Zero means unlimited.
func WithMaxStates[S any](n int) Option[S] {
	return func(o *options[S]) {
		o.maxStates = n
	}
}

// New creates an engine for the state type S with action type A.
func New[S domain.State[S, A], A any](opts ...Option[S]) *Engine[S, A] {
	o := &options[S]{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine[S, A]{
		hooks:     o.hooks,
		logger:    o.logger,
		maxStates: o.maxStates,
	}
}

// Solve searches for the nearest terminal state reachable from initial.
// It returns false when no terminal state is reachable.
func (e *Engine[S, A]) Solve(initial S) (S, bool) {
	res := e.Run(initial)
	return res.State, res.Found
}

// Run performs the search and reports statistics alongside the result.
func (e *Engine[S, A]) Run(initial S) Result[S] {
	var res Result[S]

	visited := newVisitedSet[S, A]()
	queue := &frontier[S]{}

	e.logger.Info("search started", "max_states", e.maxStates)

	visited.add(initial)
	res.Stats.Generated = 1

	if initial.IsTerminal() {
		return e.finish(res, initial, visited, queue)
	}

	queue.push(initial)
	res.Stats.MaxFrontier = 1

	for {
		current, ok := queue.pop()
		if !ok {
			break
		}
		res.Stats.Expanded++
		e.emit(EventExpand, current, visited, queue)

		for _, action := range current.Actions() {
			next, ok := current.Apply(action)
			if !ok {
				res.Stats.Rejected++
				continue
			}

			if visited.contains(next) {
				res.Stats.Duplicates++
				e.emit(EventDuplicate, next, visited, queue)
				continue
			}

			if next.IsTerminal() {
				return e.finish(res, next, visited, queue)
			}

			visited.add(next)
			queue.push(next)
			res.Stats.Generated++
			res.Stats.MaxFrontier = max(res.Stats.MaxFrontier, queue.len())
			e.emit(EventGenerate, next, visited, queue)

			if e.maxStates > 0 && visited.len() >= e.maxStates {
				res.Truncated = true
				res.Stats.Visited = visited.len()
				var zero S
				e.emit(EventTruncated, zero, visited, queue)
				e.logger.Warn("search truncated", "visited", visited.len(), "max_states", e.maxStates)
				return res
			}
		}
	}

	res.Stats.Visited = visited.len()
	var zero S
	e.emit(EventExhausted, zero, visited, queue)
	e.logger.Info("search exhausted",
		"expanded", res.Stats.Expanded,
		"visited", res.Stats.Visited,
	)
	return res
}

func (e *Engine[S, A]) finish(res Result[S], goal S, visited *visitedSet[S, A], queue *frontier[S]) Result[S] {
	res.State = goal
	res.Found = true
	res.Stats.Found = true
	res.Stats.Depth = len(goal.History())
	res.Stats.Visited = visited.len()

	e.emit(EventGoal, goal, visited, queue)
	e.logger.Info("goal reached",
		"depth", res.Stats.Depth,
		"expanded", res.Stats.Expanded,
		"visited", res.Stats.Visited,
	)
	return res
}

func (e *Engine[S, A]) emit(t EventType, s S, visited *visitedSet[S, A], queue *frontier[S]) {
	if len(e.hooks) == 0 {
		return
	}
	ev := &Event[S]{
		Type:     t,
		State:    s,
		Visited:  visited.len(),
		Frontier: queue.len(),
	}
	// Exhausted and truncated events carry no state.
	if t != EventExhausted && t != EventTruncated {
		ev.Depth = len(s.History())
	}
	for _, h := range e.hooks {
		h.fire(ev)
	}
}

// Solve runs a default engine. Callers supply the type arguments explicitly,
// e.g. search.Solve[toggle.State, domain.Move](initial).
func Solve[S domain.State[S, A], A any](initial S) (S, bool) {
	return New[S, A]().Solve(initial)
}
