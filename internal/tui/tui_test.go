package tui

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/mockapi"
)

// testProgram stands in for tea.Program: dispatched transitions queue up
// until the test feeds them back into Update.
type testProgram struct {
	msgs chan tea.Msg
}

func newTestModel(t *testing.T) (Model, *testProgram) {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewRouter(mockapi.DefaultFixtures(), mockapi.Options{}))
	t.Cleanup(srv.Close)

	settings := config.DefaultSettings()
	settings.BaseURL = srv.URL
	settings.CategoryMinDelay = 0
	settings.ShowThumbnails = false

	return newModelWithSettings(t, settings)
}

func newModelWithSettings(t *testing.T, settings *config.Settings) (Model, *testProgram) {
	t.Helper()
	p := &testProgram{msgs: make(chan tea.Msg, 16)}
	m := NewModel(settings, &programDispatcher{send: func(msg tea.Msg) { p.msgs <- msg }})
	return m, p
}

func (p *testProgram) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-p.msgs:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a dispatched message")
		return nil
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_OpenCategory(t *testing.T) {
	m, p := newTestModel(t)

	m = update(t, m, key("enter"))
	if m.screen != ScreenCategory {
		t.Fatalf("screen = %v, want %v", m.screen, ScreenCategory)
	}
	if m.category.state.Status != loader.StatusLoading {
		t.Fatalf("Status = %v, want %v", m.category.state.Status, loader.StatusLoading)
	}
	if !strings.Contains(m.View(), "Loading places") {
		t.Error("loading view should mention loading")
	}

	m = update(t, m, p.next(t))
	if m.category.state.Status != loader.StatusLoaded {
		t.Fatalf("Status = %v, want %v (%q)", m.category.state.Status, loader.StatusLoaded, m.category.state.Message)
	}
	if len(m.category.state.Payload) != 3 {
		t.Errorf("got %d places, want 3", len(m.category.state.Payload))
	}

	view := m.View()
	if !strings.Contains(view, "Art Institute of Chicago") {
		t.Errorf("view should list places:\n%s", view)
	}

	m = update(t, m, key("down"))
	if m.category.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.category.cursor)
	}
}

func TestModel_DestinationFailure(t *testing.T) {
	m, p := newTestModel(t)

	m = update(t, m, key("/"))
	if !m.searching {
		t.Fatal("search should be focused")
	}
	m = update(t, m, key("Atlantis"))
	m = update(t, m, key("enter"))

	if m.screen != ScreenDestination {
		t.Fatalf("screen = %v, want %v", m.screen, ScreenDestination)
	}
	if m.destination.known {
		t.Error("Atlantis should not be in the catalog")
	}

	m = update(t, m, p.next(t))
	if m.destination.state.Message != "Bad status: 404" {
		t.Errorf("Message = %q, want %q", m.destination.state.Message, "Bad status: 404")
	}
	if !strings.Contains(m.View(), "Bad status: 404") {
		t.Error("view should show the failure message")
	}
}

func TestModel_SearchEncodesName(t *testing.T) {
	m, p := newTestModel(t)

	m = update(t, m, key("/"))
	m = update(t, m, key("New York"))
	m = update(t, m, key("enter"))

	if !strings.HasSuffix(m.destination.loader.URL(), "?name=new%20york") {
		t.Errorf("URL = %q, want name=new%%20york", m.destination.loader.URL())
	}

	m = update(t, m, p.next(t))
	if m.destination.state.Status != loader.StatusLoaded {
		t.Fatalf("Status = %v, want %v", m.destination.state.Status, loader.StatusLoaded)
	}
	if !m.destination.known {
		t.Error("New York should be in the catalog")
	}
}

func TestModel_DestinationAttractions(t *testing.T) {
	m, p := newTestModel(t)

	m = update(t, m, key("tab"))
	m = update(t, m, key("enter"))
	if m.destination == nil || m.destination.name != "Paris" {
		t.Fatalf("expected the Paris screen, got %+v", m.destination)
	}
	m = update(t, m, p.next(t))

	m = update(t, m, key("a"))
	view := m.View()
	if !strings.Contains(view, "Louvre Museum") {
		t.Errorf("view should list attractions:\n%s", view)
	}

	m = update(t, m, key("l"))
	if m.destination.photo != 1 {
		t.Errorf("photo = %d, want 1", m.destination.photo)
	}
}

func TestModel_BackDiscardsLateResult(t *testing.T) {
	m, p := newTestModel(t)

	m = update(t, m, key("enter"))
	l := m.category.loader

	m = update(t, m, key("esc"))
	if m.screen != ScreenDiscover || m.category != nil {
		t.Fatal("esc should return to the discover screen")
	}

	// The response arrives after the screen closed.
	m = update(t, m, p.next(t))
	if s := l.State(); s.Status != loader.StatusLoading {
		t.Errorf("Status = %v, want %v", s.Status, loader.StatusLoading)
	}
}

func TestModel_InvalidRequest(t *testing.T) {
	settings := config.DefaultSettings()
	settings.BaseURL = "not a url"
	m, p := newModelWithSettings(t, settings)

	m = update(t, m, key("enter"))
	if m.category.state.Message != loader.MsgInvalidRequest {
		t.Errorf("Message = %q, want %q", m.category.state.Message, loader.MsgInvalidRequest)
	}

	select {
	case msg := <-p.msgs:
		t.Errorf("unexpected dispatch %T", msg)
	default:
	}

	m = update(t, m, tickMsg{})
	if len(m.logs) == 0 || m.logs[0].Level != loader.LevelError {
		t.Errorf("logs = %+v, want an error entry", m.logs)
	}
}

func TestModel_Restaurant(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, key("tab"))
	m = update(t, m, key("tab"))
	m = update(t, m, key("down"))
	m = update(t, m, key("enter"))

	if m.screen != ScreenRestaurant {
		t.Fatalf("screen = %v, want %v", m.screen, ScreenRestaurant)
	}
	if !strings.Contains(m.View(), "Bar & Grill") {
		t.Error("view should show the restaurant")
	}
}

func TestModel_VerboseLogs(t *testing.T) {
	m, _ := newTestModel(t)

	m.addLog(loader.Event{Message: "hidden", Level: loader.LevelVerbose})
	if len(m.logs) != 0 {
		t.Fatal("verbose events should be hidden by default")
	}

	m = update(t, m, key("v"))
	for i := 0; i < maxLogs+5; i++ {
		m.addLog(loader.Event{Message: "shown", Level: loader.LevelVerbose})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("got %d logs, want %d", len(m.logs), maxLogs)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, key("enter"))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if updated.(Model).category != nil {
		t.Error("quitting should close open screens")
	}
}

func TestModel_StalePreviewDropped(t *testing.T) {
	m, p := newTestModel(t)
	m = update(t, m, key("enter"))
	m = update(t, m, p.next(t))

	m = update(t, m, previewMsg{Index: 0, Preview: "stale"})
	if _, ok := m.category.previews.rendered[0]; ok {
		t.Error("preview for another loader should be dropped")
	}

	m = update(t, m, previewMsg{LoaderID: m.category.loader.ID(), Index: 0, Preview: "fresh"})
	if m.category.previews.rendered[0] != "fresh" {
		t.Error("preview should be stored for the open screen")
	}
}
