package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/handiism/travel-discovery/internal/http"
	ioutils "github.com/handiism/travel-discovery/internal/io"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/model"
)

const previewTimeout = 15 * time.Second

// previewMsg is sent when a thumbnail preview has been rendered.
type previewMsg struct {
	LoaderID uuid.UUID
	Index    int
	Preview  string
	Err      error
}

// previewCache tracks the rendered previews of one screen.
type previewCache struct {
	rendered  map[int]string
	requested map[int]bool
}

func newPreviewCache() previewCache {
	return previewCache{
		rendered:  make(map[int]string),
		requested: make(map[int]bool),
	}
}

// request marks index as requested and reports whether it was not already.
func (c previewCache) request(index int) bool {
	if c.requested[index] {
		return false
	}
	c.requested[index] = true
	return true
}

// categoryScreen lists the places of one category.
type categoryScreen struct {
	name        string
	loader      *loader.Loader[model.PlaceList]
	state       loader.State[model.PlaceList]
	unsubscribe func()

	cursor   int
	previews previewCache
}

func newCategoryScreen(name string, l *loader.Loader[model.PlaceList]) *categoryScreen {
	s := &categoryScreen{
		name:     name,
		loader:   l,
		previews: newPreviewCache(),
	}
	s.unsubscribe = l.Subscribe(func(state loader.State[model.PlaceList]) {
		s.state = state
	})
	return s
}

func (s *categoryScreen) close() {
	s.unsubscribe()
	s.loader.Close()
}

func (s *categoryScreen) move(delta int) {
	if s.state.Status != loader.StatusLoaded {
		return
	}
	s.cursor = clamp(s.cursor+delta, len(s.state.Payload))
}

// destinationScreen shows the details of one destination.
type destinationScreen struct {
	name        string
	loader      *loader.Loader[model.DestinationDetail]
	state       loader.State[model.DestinationDetail]
	unsubscribe func()

	// info is the static catalog entry, if the destination has one.
	info  model.Destination
	known bool

	showAttractions bool
	photo           int
	previews        previewCache
}

func newDestinationScreen(name string, l *loader.Loader[model.DestinationDetail]) *destinationScreen {
	s := &destinationScreen{
		name:     name,
		loader:   l,
		previews: newPreviewCache(),
	}
	s.info, s.known = model.FindDestination(name)
	s.unsubscribe = l.Subscribe(func(state loader.State[model.DestinationDetail]) {
		s.state = state
	})
	return s
}

func (s *destinationScreen) close() {
	s.unsubscribe()
	s.loader.Close()
}

func (s *destinationScreen) movePhoto(delta int) {
	if s.state.Status != loader.StatusLoaded {
		return
	}
	s.photo = clamp(s.photo+delta, len(s.state.Payload.PhotoURLs))
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// openCategory replaces the current screen with a category listing.
func (m *Model) openCategory(name string) tea.Cmd {
	m.closeScreens()
	m.category = newCategoryScreen(name, m.service.Category(name))
	m.screen = ScreenCategory
	return m.previewCmd()
}

// openDestination replaces the current screen with destination details.
func (m *Model) openDestination(name string) tea.Cmd {
	m.closeScreens()
	m.destination = newDestinationScreen(name, m.service.Destination(name))
	m.screen = ScreenDestination
	return m.previewCmd()
}

func (m *Model) openRestaurant(r model.Restaurant) {
	m.closeScreens()
	m.restaurant = &r
	m.screen = ScreenRestaurant
}

// closeScreens detaches every open loader; late results are dropped.
func (m *Model) closeScreens() {
	if m.category != nil {
		m.category.close()
		m.category = nil
	}
	if m.destination != nil {
		m.destination.close()
		m.destination = nil
	}
	m.restaurant = nil
	m.screen = ScreenDiscover
}

// previewCmd starts rendering the preview for the current selection, if
// one is needed.
func (m *Model) previewCmd() tea.Cmd {
	if !m.settings.ShowThumbnails || m.settings.ThumbnailWidth <= 0 {
		return nil
	}

	switch m.screen {
	case ScreenCategory:
		s := m.category
		if s.state.Status != loader.StatusLoaded || s.cursor >= len(s.state.Payload) {
			return nil
		}
		place := s.state.Payload[s.cursor]
		if !place.HasThumbnail() || !s.previews.request(s.cursor) {
			return nil
		}
		return m.fetchPreview(s.loader.ID(), s.cursor, place.ThumbnailURL)

	case ScreenDestination:
		s := m.destination
		photos := s.state.Payload.PhotoURLs
		if s.state.Status != loader.StatusLoaded || s.photo >= len(photos) {
			return nil
		}
		if !s.previews.request(s.photo) {
			return nil
		}
		return m.fetchPreview(s.loader.ID(), s.photo, photos[s.photo])
	}

	return nil
}

// fetchPreview downloads an image and renders it as terminal blocks.
func (m *Model) fetchPreview(id uuid.UUID, index int, url string) tea.Cmd {
	client, images, width := m.client, m.images, m.settings.ThumbnailWidth
	return func() tea.Msg {
		return renderPreview(client, images, width, id, index, url)
	}
}

func renderPreview(client *http.Client, images *ioutils.ImageService, width int, id uuid.UUID, index int, url string) previewMsg {
	ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
	defer cancel()

	msg := previewMsg{LoaderID: id, Index: index}

	data, err := client.DownloadBytes(ctx, url)
	if err != nil {
		msg.Err = fmt.Errorf("failed to download preview: %w", err)
		return msg
	}

	msg.Preview, msg.Err = images.Preview(ctx, data, width)
	return msg
}

// applyPreview stores a rendered preview on the screen that requested it.
// Previews for closed screens are dropped.
func (m *Model) applyPreview(msg previewMsg) {
	var cache previewCache
	switch {
	case m.category != nil && m.category.loader.ID() == msg.LoaderID:
		cache = m.category.previews
	case m.destination != nil && m.destination.loader.ID() == msg.LoaderID:
		cache = m.destination.previews
	default:
		return
	}

	if msg.Err != nil {
		cache.rendered[msg.Index] = dimStyle.Render("(preview unavailable)")
		m.addLog(loader.Event{LoaderID: msg.LoaderID, Message: msg.Err.Error(), Level: loader.LevelWarning})
		return
	}
	cache.rendered[msg.Index] = msg.Preview
}
