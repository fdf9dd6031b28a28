package batch

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/model"
	"github.com/handiism/travel-discovery/internal/travel"
	"golang.org/x/sync/errgroup"
)

// Kind selects the endpoint a batch loads from.
type Kind int

const (
	KindCategory Kind = iota
	KindDestination
)

// String returns the endpoint name.
func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindDestination:
		return "destination"
	}
	return "unknown"
}

// Result is the terminal state of one loader in a batch.
type Result struct {
	Kind    Kind
	Name    string
	URL     string
	Status  loader.Status
	Message string

	// Places is set for successful category loads.
	Places model.PlaceList

	// Detail is set for successful destination loads.
	Detail *model.DestinationDetail
}

// OK reports whether the load succeeded.
func (r Result) OK() bool {
	return r.Status == loader.StatusLoaded
}

// Manager runs one loader per name, several at a time.
type Manager struct {
	settings *config.Settings
	service  *travel.Service

	total    int32
	resolved int32
	failed   int32

	onProgress func(loader.Event)
}

// NewManager creates a new batch Manager.
//
// Loaders resolve inline on their fetch goroutine; there is no UI loop.
func NewManager(settings *config.Settings, onProgress func(loader.Event)) *Manager {
	m := &Manager{
		settings:   settings,
		onProgress: onProgress,
	}
	m.service = travel.NewService(settings.ToServiceConfig(loader.Inline, m.progress))
	return m
}

// Run loads every name and returns results in input order.
//
// A failed load is reported in its Result, not as an error. The error is
// non-nil only if ctx ends before every loader resolved.
func (m *Manager) Run(ctx context.Context, kind Kind, names []string) ([]Result, error) {
	results := make([]Result, len(names))
	atomic.StoreInt32(&m.total, int32(len(names)))
	atomic.StoreInt32(&m.resolved, 0)
	atomic.StoreInt32(&m.failed, 0)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentLoads)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			result, err := m.load(ctx, kind, name)
			if err != nil {
				return err
			}
			results[i] = result

			atomic.AddInt32(&m.resolved, 1)
			if !result.OK() {
				atomic.AddInt32(&m.failed, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	if failed := atomic.LoadInt32(&m.failed); failed > 0 {
		m.progress(loader.Event{Message: fmt.Sprintf("%d of %d %s loads failed", failed, len(names), kind), Level: loader.LevelWarning})
	} else {
		m.progress(loader.Event{Message: fmt.Sprintf("Loaded %d %s(s)", len(names), kind), Level: loader.LevelSuccess})
	}

	return results, nil
}

// GetProgress returns how many loaders resolved, failed, and were started.
func (m *Manager) GetProgress() (resolved, failed, total int32) {
	return atomic.LoadInt32(&m.resolved), atomic.LoadInt32(&m.failed), atomic.LoadInt32(&m.total)
}

func (m *Manager) load(ctx context.Context, kind Kind, name string) (Result, error) {
	result := Result{Kind: kind, Name: name}

	switch kind {
	case KindCategory:
		l := m.service.Category(name)
		defer l.Close()
		result.URL = l.URL()

		state, err := l.Wait(ctx)
		if err != nil {
			return result, err
		}
		result.Status, result.Message = state.Status, state.Message
		if state.Status == loader.StatusLoaded {
			result.Places = state.Payload
		}

	case KindDestination:
		l := m.service.Destination(name)
		defer l.Close()
		result.URL = l.URL()

		state, err := l.Wait(ctx)
		if err != nil {
			return result, err
		}
		result.Status, result.Message = state.Status, state.Message
		if state.Status == loader.StatusLoaded {
			detail := state.Payload
			result.Detail = &detail
		}

	default:
		return result, fmt.Errorf("unknown kind %d", kind)
	}

	return result, nil
}

func (m *Manager) progress(event loader.Event) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

// ParseNames splits comma- or newline-separated names, trimming blanks.
//
// Names are passed through otherwise untouched; an explicitly quoted empty
// name is not representable and is dropped.
func ParseNames(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	var names []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			names = append(names, f)
		}
	}
	return names
}
