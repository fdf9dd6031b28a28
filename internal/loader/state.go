package loader

// Status is the variant of a State.
type Status int

const (
	// StatusLoading is the initial state; no payload yet.
	StatusLoading Status = iota

	// StatusLoaded means the payload was fetched and decoded.
	StatusLoaded

	// StatusFailed means the load ended with a diagnostic message.
	StatusFailed
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// IsTerminal returns true for StatusLoaded and StatusFailed.
func (s Status) IsTerminal() bool {
	return s == StatusLoaded || s == StatusFailed
}

// State is the observable status of a Loader.
//
// Exactly one variant holds at a time:
//   - StatusLoading: Payload and Message are zero
//   - StatusLoaded: Payload holds the decoded result
//   - StatusFailed: Message holds a human-readable diagnostic
//
// Build values with Loading, Loaded and Failed rather than by hand.
type State[T any] struct {
	Status  Status
	Payload T
	Message string
}

// Loading returns the initial state.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Loaded returns a terminal success state holding payload.
func Loaded[T any](payload T) State[T] {
	return State[T]{Status: StatusLoaded, Payload: payload}
}

// Failed returns a terminal failure state holding message.
func Failed[T any](message string) State[T] {
	return State[T]{Status: StatusFailed, Message: message}
}

// IsTerminal reports whether no further transition can follow.
func (s State[T]) IsTerminal() bool {
	return s.Status.IsTerminal()
}
