package loader

import "github.com/google/uuid"

// Level indicates the severity/type of an event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns a lower-case name for the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	}
	return "unknown"
}

// Event is a diagnostic emitted by a Loader.
//
// Events are emitted from the fetch goroutine, so handlers must be safe for
// concurrent use.
type Event struct {
	LoaderID uuid.UUID
	Name     string
	Message  string
	Level    Level
}
