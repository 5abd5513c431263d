package domain

// State is the contract every puzzle configuration must satisfy.
//
// S is the concrete state type and A its action type. Binding both at the type
// level means a state can only ever be handed its own actions.
//
// Implementations must be immutable values: Apply never modifies the receiver.
// Equal and Hash are derived from the identity attributes only (position,
// features, flags) and must ignore History. Two states that differ only in the
// path used to reach them are the same configuration.
type State[S any, A any] interface {
	// IsTerminal reports whether the state satisfies the goal.
	IsTerminal() bool

	// Actions returns the candidate actions in a stable order.
	Actions() []A

	// Apply returns the successor produced by a, or false if a is
	// inapplicable in this state.
	Apply(a A) (S, bool)

	// Equal reports structural equality, ignoring history.
	Equal(other S) bool

	// Hash is a deterministic fingerprint consistent with Equal.
	Hash() uint64

	// History is the ordered list of actions taken from the initial state.
	History() []A
}
