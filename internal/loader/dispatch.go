package loader

import "sync"

// Dispatcher runs functions on the presentation context.
//
// A Loader applies its terminal transition, and notifies subscribers, inside
// a function handed to Dispatch. Implementations decide which goroutine that
// is: a UI event loop, a Bubble Tea program, or the caller itself.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a plain function to Dispatcher.
type DispatcherFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// Inline runs dispatched functions immediately on the resolving goroutine.
//
// Suitable for command-line use and tests where no UI loop exists.
var Inline Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// EventLoop is a serial executor: every dispatched function runs on one
// goroutine, in dispatch order.
//
// Example:
//
//	loop := loader.NewEventLoop(16)
//	defer loop.Stop()
//
//	l := loader.New(loader.Options[model.PlaceList]{..., Dispatcher: loop})
type EventLoop struct {
	queue chan func()

	// mu guards stopped and keeps queue open while a Dispatch is sending.
	mu      sync.RWMutex
	stopped bool

	// done is closed once every queued function has run after Stop.
	done chan struct{}
}

// NewEventLoop starts an event loop whose queue holds up to buffer pending functions.
func NewEventLoop(buffer int) *EventLoop {
	e := &EventLoop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *EventLoop) run() {
	defer close(e.done)
	for fn := range e.queue {
		fn()
	}
}

// Dispatch queues fn. After Stop, fn runs on the caller's goroutine so a
// loader resolving late still reaches a terminal state.
func (e *EventLoop) Dispatch(fn func()) {
	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		fn()
		return
	}
	e.queue <- fn
	e.mu.RUnlock()
}

// Stop terminates the loop once the functions already queued have run.
// Stop does not wait for them and must not be called from a dispatched
// function. It is idempotent.
func (e *EventLoop) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	close(e.queue)
}
