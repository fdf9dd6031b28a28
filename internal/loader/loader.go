package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/travel-discovery/internal/http"
)

// Fetcher performs the single GET issued by a Loader.
//
// *http.Client satisfies Fetcher. Implementations must return a
// *http.StatusError for statuses >= 400 without reading the body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Decoder turns a response body into a payload.
type Decoder[T any] func(data []byte) (T, error)

// Options configures a Loader.
type Options[T any] struct {
	// Name is the entity name driving the query. Empty names are sent as-is.
	Name string

	// BaseURL is the API root, e.g. "https://travel.letsbuildthatapp.com".
	BaseURL string

	// Path is the endpoint path appended to BaseURL.
	Path string

	// MinDelay is waited after the response arrives and before the state
	// resolves. Zero resolves as soon as the response is decoded.
	MinDelay time.Duration

	Fetcher Fetcher
	Decode  Decoder[T]

	// Dispatcher runs the terminal transition. Defaults to Inline.
	Dispatcher Dispatcher

	// OnEvent receives diagnostics. May be nil.
	OnEvent func(Event)
}

// Loader fetches one JSON resource for a named entity and publishes its
// progress as a State.
//
// A Loader issues exactly one request, started by New. Its state moves once,
// from StatusLoading to StatusLoaded or StatusFailed, and never again.
//
// Example usage:
//
//	l := loader.New(loader.Options[model.PlaceList]{
//	    Name:       "Art",
//	    BaseURL:    "https://travel.letsbuildthatapp.com",
//	    Path:       "/travel_discovery/category",
//	    MinDelay:   3 * time.Second,
//	    Fetcher:    http.NewClient(),
//	    Decode:     decodePlaces,
//	    Dispatcher: loop,
//	})
//	defer l.Close()
//
//	unsubscribe := l.Subscribe(func(s loader.State[model.PlaceList]) {
//	    switch s.Status {
//	    case loader.StatusLoading:
//	        showSpinner()
//	    case loader.StatusLoaded:
//	        showPlaces(s.Payload)
//	    case loader.StatusFailed:
//	        showError(s.Message)
//	    }
//	})
//	defer unsubscribe()
type Loader[T any] struct {
	id       uuid.UUID
	name     string
	url      string
	minDelay time.Duration

	fetcher    Fetcher
	decode     Decoder[T]
	dispatcher Dispatcher
	onEvent    func(Event)

	mu          sync.Mutex
	state       State[T]
	closed      bool
	subscribers map[int]func(State[T])
	nextSubID   int

	// notifyMu orders the initial delivery in Subscribe against the terminal
	// notification so no subscriber sees Loading after a terminal state.
	notifyMu sync.Mutex

	done     chan struct{}
	closedCh chan struct{}
}

// New creates a Loader in StatusLoading and starts its request.
//
// If the target URL cannot be built, the returned Loader is already in
// StatusFailed with MsgInvalidRequest and no request is sent.
func New[T any](opts Options[T]) *Loader[T] {
	l := &Loader[T]{
		id:          uuid.New(),
		name:        opts.Name,
		minDelay:    opts.MinDelay,
		fetcher:     opts.Fetcher,
		decode:      opts.Decode,
		dispatcher:  opts.Dispatcher,
		onEvent:     opts.OnEvent,
		state:       Loading[T](),
		subscribers: make(map[int]func(State[T])),
		done:        make(chan struct{}),
		closedCh:    make(chan struct{}),
	}
	if l.dispatcher == nil {
		l.dispatcher = Inline
	}

	target, err := BuildURL(opts.BaseURL, opts.Path, opts.Name)
	if err == nil && (l.fetcher == nil || l.decode == nil) {
		err = fmt.Errorf("%w: loader has no fetcher or decoder", ErrInvalidRequest)
	}
	if err != nil {
		l.emit(fmt.Sprintf("Cannot load %q: %v", opts.Name, err), LevelError)
		l.state = Failed[T](MsgInvalidRequest)
		close(l.done)
		return l
	}
	l.url = target

	go l.fetch()

	return l
}

// ID returns the loader's unique identifier.
func (l *Loader[T]) ID() uuid.UUID {
	return l.id
}

// Name returns the entity name the loader was created with.
func (l *Loader[T]) Name() string {
	return l.name
}

// URL returns the request target, or an empty string if it could not be built.
func (l *Loader[T]) URL() string {
	return l.url
}

// State returns the current state.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Done returns a channel closed once the loader reaches a terminal state.
func (l *Loader[T]) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the loader resolves, is closed, or ctx is done.
//
// Returns ErrClosed if Close was called first, or ctx.Err().
func (l *Loader[T]) Wait(ctx context.Context) (State[T], error) {
	select {
	case <-l.done:
		return l.State(), nil
	case <-l.closedCh:
		return l.State(), ErrClosed
	case <-ctx.Done():
		return l.State(), ctx.Err()
	}
}

// Subscribe registers fn for state changes and immediately calls it with
// the current state. Later notifications run on the Dispatcher.
//
// fn must not call Subscribe. The returned function removes the subscription.
func (l *Loader[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	current := l.state
	if l.closed {
		l.mu.Unlock()
		fn(current)
		return func() {}
	}
	id := l.nextSubID
	l.nextSubID++
	l.subscribers[id] = fn
	l.mu.Unlock()

	fn(current)

	return func() {
		l.mu.Lock()
		delete(l.subscribers, id)
		l.mu.Unlock()
	}
}

// Close detaches the loader from its screen.
//
// The in-flight request is not cancelled; its result is discarded when it
// arrives. Close is idempotent.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.subscribers = nil
	close(l.closedCh)
}

func (l *Loader[T]) fetch() {
	l.emit(fmt.Sprintf("GET %s", l.url), LevelVerbose)

	// Close never cancels the request.
	body, err := l.fetcher.Get(context.Background(), l.url)

	next := l.resolve(body, err)

	if l.minDelay > 0 {
		time.Sleep(l.minDelay)
	}

	l.dispatcher.Dispatch(func() {
		l.apply(next)
	})
}

func (l *Loader[T]) resolve(body []byte, err error) State[T] {
	if err != nil {
		var statusErr *http.StatusError
		if !errors.As(err, &statusErr) {
			err = fmt.Errorf("%w: %v", ErrTransport, err)
		}
		l.emit(fmt.Sprintf("Error loading %q: %v", l.name, err), LevelError)
		return Failed[T](failureMessage(err))
	}

	payload, err := l.decode(body)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDecode, err)
		l.emit(fmt.Sprintf("Error decoding %q: %v", l.name, err), LevelError)
		return Failed[T](failureMessage(err))
	}

	l.emit(fmt.Sprintf("Loaded %q (%d bytes)", l.name, len(body)), LevelSuccess)
	return Loaded(payload)
}

func (l *Loader[T]) apply(next State[T]) {
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()

	l.mu.Lock()
	if l.closed || l.state.IsTerminal() {
		l.mu.Unlock()
		l.emit(fmt.Sprintf("Discarded late result for %q", l.name), LevelVerbose)
		return
	}
	l.state = next
	subs := make([]func(State[T]), 0, len(l.subscribers))
	for id := 0; id < l.nextSubID; id++ {
		if fn, ok := l.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	l.mu.Unlock()

	// Done is closed first so subscribers may call Wait.
	close(l.done)

	for _, fn := range subs {
		fn(next)
	}
}

func (l *Loader[T]) emit(message string, level Level) {
	if l.onEvent != nil {
		l.onEvent(Event{LoaderID: l.id, Name: l.name, Message: message, Level: level})
	}
}
