/*
Package ports holds the reusable contract suites for the interfaces Switchback
is built around.

Any type plugged into the search engine can be checked against the same
expectations the engine relies on by calling the suite from its own tests:

	func TestState_Contract(t *testing.T) {
		ports.RunStateContract[toggle.State, domain.Move](t, initial)
	}

# Suites

  - RunStateContract: determinism of Apply, immutability of the receiver,
    history bookkeeping and the agreement between Equal and Hash.
*/
package ports
