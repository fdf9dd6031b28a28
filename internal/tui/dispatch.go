package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/travel-discovery/internal/loader"
)

// dispatchMsg carries a loader transition into Update, where it runs.
type dispatchMsg struct {
	fn func()
}

// programDispatcher hands loader transitions to the Bubble Tea program, so
// screen state only changes on the Update goroutine.
type programDispatcher struct {
	send func(tea.Msg)
}

// Dispatch implements loader.Dispatcher.
func (d *programDispatcher) Dispatch(fn func()) {
	d.send(dispatchMsg{fn: fn})
}

// eventBuffer collects loader events until the next tick drains them.
//
// Events may be emitted from inside Update, where sending to the program
// would block, so they are buffered instead.
type eventBuffer struct {
	mu     sync.Mutex
	events []loader.Event
}

func (b *eventBuffer) add(event loader.Event) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *eventBuffer) drain() []loader.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}
