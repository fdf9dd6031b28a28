package batch

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/mockapi"
)

func newTestManager(t *testing.T, opts mockapi.Options) (*Manager, *[]loader.Event) {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewRouter(mockapi.DefaultFixtures(), opts))
	t.Cleanup(srv.Close)

	settings := config.DefaultSettings()
	settings.BaseURL = srv.URL
	settings.CategoryMinDelay = 0
	settings.MaxConcurrentLoads = 2

	var mu sync.Mutex
	events := &[]loader.Event{}
	m := NewManager(settings, func(e loader.Event) {
		mu.Lock()
		*events = append(*events, e)
		mu.Unlock()
	})
	return m, events
}

func TestManager_RunCategories(t *testing.T) {
	m, events := newTestManager(t, mockapi.Options{})

	names := []string{"Art", "Sport", "Closed", "Glitch", "Unknown"}
	results, err := m.Run(context.Background(), KindCategory, names)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, name := range names {
		if results[i].Name != name {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, name)
		}
	}

	if len(results[0].Places) != 3 || !results[0].OK() {
		t.Errorf("Art = %+v, want 3 places", results[0])
	}
	if results[2].Message != "Bad status: 503" {
		t.Errorf("Closed message = %q, want %q", results[2].Message, "Bad status: 503")
	}
	if results[3].Message != loader.MsgDecodeError {
		t.Errorf("Glitch message = %q, want %q", results[3].Message, loader.MsgDecodeError)
	}
	if !results[4].OK() || len(results[4].Places) != 0 {
		t.Errorf("Unknown = %+v, want empty success", results[4])
	}

	resolved, failed, total := m.GetProgress()
	if resolved != 5 || failed != 2 || total != 5 {
		t.Errorf("GetProgress() = %d, %d, %d, want 5, 2, 5", resolved, failed, total)
	}

	if len(*events) == 0 {
		t.Error("expected progress events")
	}
}

func TestManager_RunDestinations(t *testing.T) {
	m, _ := newTestManager(t, mockapi.Options{})

	results, err := m.Run(context.Background(), KindDestination, []string{"Paris", "New York", "Atlantis"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[0].Detail == nil || len(results[0].Detail.PhotoURLs) != 4 {
		t.Errorf("Paris = %+v, want 4 photos", results[0])
	}
	if results[1].Detail == nil || results[1].URL == "" {
		t.Errorf("New York = %+v, want detail and URL", results[1])
	}
	if results[2].OK() || results[2].Detail != nil {
		t.Errorf("Atlantis = %+v, want failure", results[2])
	}
}

func TestManager_RunCancelled(t *testing.T) {
	m, _ := newTestManager(t, mockapi.Options{Latency: 2 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := m.Run(ctx, KindDestination, []string{"Paris"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Art", []string{"Art"}},
		{"Art, Food ,History", []string{"Art", "Food", "History"}},
		{"Paris\nNew York\n\n", []string{"Paris", "New York"}},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseNames(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseNames(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseNames(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindCategory.String() != "category" || KindDestination.String() != "destination" {
		t.Error("unexpected kind names")
	}
}
