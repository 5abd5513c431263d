/*
Package search implements the breadth-first solver used by Switchback.

The Engine is generic over any type satisfying domain.State. It only asks a
state for its candidate actions, applies them, tests terminality and compares
states by structural identity; it knows nothing about grids or toggles.

# Algorithm

  - The initial state is tested for terminality first and then marked visited.
  - States are expanded in FIFO order. Each successor is checked against the
    visited set, then tested for terminality at the moment it is generated.
  - The first terminal successor is returned. Breadth-first order guarantees it
    has a minimal-length history; ties are broken by the order of Actions().

The search is synchronous and single-threaded. Termination relies on the
reachable state space being finite; WithMaxStates can cap it defensively.
*/
package search
