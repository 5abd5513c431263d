package search

// EventType defines the category of a search event.
type EventType string

const (
	EventExpand    EventType = "expand"    // A state was dequeued for expansion
	EventGenerate  EventType = "generate"  // A new state entered the visited set
	EventDuplicate EventType = "duplicate" // A successor was already visited
	EventGoal      EventType = "goal"      // A terminal state was found
	EventExhausted EventType = "exhausted" // The frontier emptied without a goal
	EventTruncated EventType = "truncated" // WithMaxStates stopped the search
)

// Event describes a step of the search.
type Event[S any] struct {
	Type     EventType
	State    S
	Depth    int // History length of State
	Visited  int // Size of the visited set after the step
	Frontier int // Size of the frontier after the step
}

// Hooks defines callbacks for search observability.
// Nil callbacks are skipped.
type Hooks[S any] struct {
	OnExpand    func(*Event[S])
	OnGenerate  func(*Event[S])
	OnDuplicate func(*Event[S])
	OnGoal      func(*Event[S])
	OnExhausted func(*Event[S])
	OnTruncated func(*Event[S])
}

func (h Hooks[S]) fire(e *Event[S]) {
	var fn func(*Event[S])
	switch e.Type {
	case EventExpand:
		fn = h.OnExpand
	case EventGenerate:
		fn = h.OnGenerate
	case EventDuplicate:
		fn = h.OnDuplicate
	case EventGoal:
		fn = h.OnGoal
	case EventExhausted:
		fn = h.OnExhausted
	case EventTruncated:
		fn = h.OnTruncated
	}
	if fn != nil {
		fn(e)
	}
}
