package search_test

import (
	"slices"
	"testing"

	"github.com/aretw0/switchback/pkg/ports"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step is the action type of lineState.
type step int

// lineState walks on the integers [0, limit] towards goal.
// collide forces every state into the same hash bucket.
type lineState struct {
	pos     int
	goal    int
	limit   int
	collide bool
	history []step
}

func (s lineState) IsTerminal() bool { return s.pos == s.goal }

func (s lineState) Actions() []step { return []step{1, -1} }

func (s lineState) Apply(a step) (lineState, bool) {
	next := s.pos + int(a)
	if next < 0 || next > s.limit {
		return lineState{}, false
	}
	s.pos = next
	s.history = append(slices.Clip(s.history), a)
	return s, true
}

func (s lineState) Equal(other lineState) bool { return s.pos == other.pos }

func (s lineState) Hash() uint64 {
	if s.collide {
		return 42
	}
	return uint64(s.pos)
}

func (s lineState) History() []step { return s.history }

func TestLineState_Contract(t *testing.T) {
	ports.RunStateContract[lineState, step](t, lineState{pos: 3, goal: 9, limit: 6})
	ports.RunStateContract[lineState, step](t, lineState{pos: 0, goal: 2, limit: 4, collide: true})
}

func TestEngine_Solve_ShortestPath(t *testing.T) {
	initial := lineState{pos: 2, goal: 7, limit: 10}

	got, ok := search.Solve[lineState, step](initial)
	require.True(t, ok)
	assert.Equal(t, 7, got.pos)
	assert.Len(t, got.History(), 5)
	for _, a := range got.History() {
		assert.Equal(t, step(1), a)
	}
}

func TestEngine_Solve_InitialTerminal(t *testing.T) {
	initial := lineState{pos: 3, goal: 3, limit: 5}

	res := search.New[lineState, step]().Run(initial)
	require.True(t, res.Found)
	assert.Empty(t, res.State.History())
	assert.Equal(t, 0, res.Stats.Expanded)
	assert.Equal(t, 0, res.Stats.Depth)
}

func TestEngine_Solve_NoSolution(t *testing.T) {
	initial := lineState{pos: 0, goal: 20, limit: 5}

	res := search.New[lineState, step]().Run(initial)
	assert.False(t, res.Found)
	assert.False(t, res.Truncated)
	// Every reachable position is visited exactly once.
	assert.Equal(t, 6, res.Stats.Visited)
	assert.Equal(t, 6, res.Stats.Expanded)
	// Initial state is never regenerated from its successors.
	assert.Equal(t, 6, res.Stats.Generated)
}

func TestEngine_Deduplication_IgnoresHash(t *testing.T) {
	// All states collide; Equal must still distinguish them.
	initial := lineState{pos: 0, goal: 4, limit: 6, collide: true}

	res := search.New[lineState, step]().Run(initial)
	require.True(t, res.Found)
	assert.Len(t, res.State.History(), 4)
	assert.Equal(t, 4, res.Stats.Visited, "0..3 visited before goal 4 is generated")
}

func TestEngine_Stats(t *testing.T) {
	initial := lineState{pos: 0, goal: 3, limit: 3}

	res := search.New[lineState, step]().Run(initial)
	require.True(t, res.Found)

	// 0 expands: +1 new, -1 rejected.
	// 1 expands: 2 new, 0 duplicate.
	// 2 expands: 3 terminal.
	assert.Equal(t, search.Stats{
		Expanded:    3,
		Generated:   3,
		Rejected:    1,
		Duplicates:  1,
		MaxFrontier: 1,
		Visited:     3,
		Depth:       3,
		Found:       true,
	}, res.Stats)
}

func TestEngine_MaxStates(t *testing.T) {
	initial := lineState{pos: 0, goal: 100, limit: 100}

	res := search.New[lineState, step](search.WithMaxStates[lineState](10)).Run(initial)
	assert.False(t, res.Found)
	assert.True(t, res.Truncated)
	assert.Equal(t, 10, res.Stats.Visited)
}

func TestEngine_Hooks_Truncated(t *testing.T) {
	initial := lineState{pos: 0, goal: 100, limit: 100}

	var events []search.EventType
	record := func(e *search.Event[lineState]) { events = append(events, e.Type) }
	truncated := 0

	eng := search.New[lineState, step](
		search.WithMaxStates[lineState](3),
		search.WithHooks(search.Hooks[lineState]{
			OnGoal:      record,
			OnExhausted: record,
			OnTruncated: func(e *search.Event[lineState]) {
				record(e)
				truncated++
				assert.Equal(t, 3, e.Visited)
				assert.Zero(t, e.Depth)
			},
		}),
	)

	res := eng.Run(initial)
	require.True(t, res.Truncated)
	assert.Equal(t, 1, truncated)
	assert.Equal(t, []search.EventType{search.EventTruncated}, events)
}

func TestEngine_Hooks(t *testing.T) {
	initial := lineState{pos: 0, goal: 2, limit: 2}

	var events []search.EventType
	record := func(e *search.Event[lineState]) { events = append(events, e.Type) }
	var goalDepth int

	eng := search.New[lineState, step](
		search.WithHooks(search.Hooks[lineState]{
			OnExpand:    record,
			OnGenerate:  record,
			OnDuplicate: record,
			OnGoal: func(e *search.Event[lineState]) {
				record(e)
				goalDepth = e.Depth
			},
		}),
	)

	_, ok := eng.Solve(initial)
	require.True(t, ok)
	assert.Equal(t, []search.EventType{
		search.EventExpand,   // 0
		search.EventGenerate, // 1
		search.EventExpand,   // 1
		search.EventGoal,     // 2
	}, events)
	assert.Equal(t, 2, goalDepth)
}

func TestEngine_Hooks_Exhausted(t *testing.T) {
	initial := lineState{pos: 0, goal: 9, limit: 1}

	exhausted := 0
	first, second := 0, 0
	eng := search.New[lineState, step](
		search.WithHooks(search.Hooks[lineState]{
			OnExhausted: func(e *search.Event[lineState]) {
				exhausted++
				assert.Equal(t, 0, e.Frontier)
				assert.Equal(t, 2, e.Visited)
			},
			OnExpand: func(*search.Event[lineState]) { first++ },
		}),
		search.WithHooks(search.Hooks[lineState]{
			OnExpand: func(*search.Event[lineState]) { second++ },
		}),
	)

	_, ok := eng.Solve(initial)
	assert.False(t, ok)
	assert.Equal(t, 1, exhausted)
	assert.Equal(t, 2, first)
	assert.Equal(t, first, second)
}

func TestEngine_Deterministic(t *testing.T) {
	initial := lineState{pos: 5, goal: 0, limit: 9}
	eng := search.New[lineState, step]()

	a, okA := eng.Solve(initial)
	b, okB := eng.Solve(initial)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a.History(), b.History())
}
