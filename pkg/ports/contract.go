package ports

import (
	"slices"
	"testing"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractStates bounds how many distinct states the suite explores.
const contractStates = 64

// revisit is a successor found equal to an already explored state.
type revisit[S any] struct {
	seen  S
	again S
}

// RunStateContract runs a suite of tests to verify that a domain.State
// implementation adheres to the contract the search engine depends on.
// The checks run against initial and the states reachable from it.
func RunStateContract[S domain.State[S, A], A any](t *testing.T, initial S) {
	states, revisits := explore[S, A](initial, contractStates)
	require.NotEmpty(t, states)

	t.Run("Apply is deterministic", func(t *testing.T) {
		for _, s := range states {
			for _, a := range s.Actions() {
				first, okFirst := s.Apply(a)
				second, okSecond := s.Apply(a)
				require.Equal(t, okFirst, okSecond, "applicability of %v changed between calls", a)
				if !okFirst {
					continue
				}
				assert.True(t, first.Equal(second), "successors of %v differ", a)
				assert.Equal(t, first.Hash(), second.Hash())
				assertHistory(t, first.History(), second.History())
			}
		}
	})

	t.Run("Apply leaves the receiver untouched", func(t *testing.T) {
		for _, s := range states {
			hash := s.Hash()
			terminal := s.IsTerminal()
			history := slices.Clone(s.History())
			actions := len(s.Actions())

			for _, a := range s.Actions() {
				s.Apply(a)
			}

			assert.Equal(t, hash, s.Hash())
			assert.Equal(t, terminal, s.IsTerminal())
			assert.Len(t, s.Actions(), actions)
			assertHistory(t, history, s.History())
			assert.True(t, s.Equal(s))
		}
	})

	t.Run("Successor history extends the receiver", func(t *testing.T) {
		for _, s := range states {
			parent := s.History()
			for _, a := range s.Actions() {
				next, ok := s.Apply(a)
				if !ok {
					continue
				}
				got := next.History()
				require.Len(t, got, len(parent)+1)
				assertHistory(t, parent, got[:len(parent)])
				assert.Equal(t, a, got[len(parent)])
			}
		}
	})

	t.Run("Equal is reflexive and symmetric", func(t *testing.T) {
		for i, s := range states {
			assert.True(t, s.Equal(s), "state %d is not equal to itself", i)
			for _, o := range states[i+1:] {
				assert.Equal(t, s.Equal(o), o.Equal(s))
			}
		}
	})

	t.Run("Equal states share a hash", func(t *testing.T) {
		for i, s := range states {
			for _, o := range states[i+1:] {
				if s.Equal(o) {
					assert.Equal(t, s.Hash(), o.Hash())
				}
			}
		}
	})

	t.Run("Equality ignores history", func(t *testing.T) {
		if len(revisits) == 0 {
			t.Skip("no configuration was reached twice")
		}
		for _, r := range revisits {
			assert.True(t, r.again.Equal(r.seen))
			assert.Equal(t, r.seen.Hash(), r.again.Hash())
		}
	})
}

// explore walks breadth-first from initial and returns up to limit distinct
// states, along with successors that landed on an already explored state
// through a longer path.
func explore[S domain.State[S, A], A any](initial S, limit int) ([]S, []revisit[S]) {
	states := []S{initial}
	var revisits []revisit[S]

	find := func(n S) (S, bool) {
		for _, s := range states {
			if s.Equal(n) {
				return s, true
			}
		}
		var zero S
		return zero, false
	}

	for i := 0; i < len(states); i++ {
		for _, a := range states[i].Actions() {
			next, ok := states[i].Apply(a)
			if !ok {
				continue
			}
			if seen, dup := find(next); dup {
				if len(seen.History()) != len(next.History()) {
					revisits = append(revisits, revisit[S]{seen: seen, again: next})
				}
				continue
			}
			if len(states) < limit {
				states = append(states, next)
			}
		}
	}
	return states, revisits
}

func assertHistory[A any](t *testing.T, want, got []A) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "history differs at step %d", i)
	}
}
