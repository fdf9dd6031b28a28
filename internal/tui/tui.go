// Package tui provides a Bubble Tea terminal user interface for travel discovery.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/http"
	ioutils "github.com/handiism/travel-discovery/internal/io"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/model"
	"github.com/handiism/travel-discovery/internal/travel"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// Screen identifies the screen being shown.
type Screen int

const (
	ScreenDiscover Screen = iota
	ScreenCategory
	ScreenDestination
	ScreenRestaurant
)

// Sections of the discover screen, in tab order.
const (
	sectionCategories = iota
	sectionDestinations
	sectionRestaurants
	sectionCount
)

const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   loader.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	screen   Screen
	settings *config.Settings

	service *travel.Service
	client  *http.Client
	images  *ioutils.ImageService
	events  *eventBuffer

	spinner   spinner.Model
	search    textinput.Model
	searching bool

	// Discover screen
	categories   []model.Category
	destinations []model.Destination
	restaurants  []model.Restaurant
	section      int
	cursors      [sectionCount]int

	// At most one of these is open at a time.
	category    *categoryScreen
	destination *destinationScreen
	restaurant  *model.Restaurant

	logs    []LogEntry
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model whose loaders resolve through dispatcher.
func NewModel(settings *config.Settings, dispatcher loader.Dispatcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Destination name, e.g. New York"
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	events := &eventBuffer{}

	return Model{
		screen:       ScreenDiscover,
		settings:     settings,
		service:      travel.NewService(settings.ToServiceConfig(dispatcher, events.add)),
		client:       settings.NewHTTPClient(),
		images:       ioutils.NewImageService(),
		events:       events,
		spinner:      sp,
		search:       ti,
		categories:   model.Categories(),
		destinations: model.Destinations(),
		restaurants:  model.Restaurants(),
		logs:         make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickEvents())
}

// tickMsg drains buffered loader events into the log pane.
type tickMsg struct{}

func tickEvents() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.closeScreens()
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKey(msg)

	case dispatchMsg:
		// Loader transitions run here, on the Update goroutine.
		msg.fn()
		cmds = append(cmds, m.previewCmd())

	case previewMsg:
		m.applyPreview(msg)

	case tickMsg:
		for _, event := range m.events.drain() {
			m.addLog(event)
		}
		cmds = append(cmds, tickEvents())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil

	case "enter":
		name := m.search.Value()
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if name == "" {
			return m, nil
		}
		return m, m.openDestination(name)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "v" {
		m.verbose = !m.verbose
		return m, nil
	}

	switch m.screen {
	case ScreenDiscover:
		return m.updateDiscover(key)

	case ScreenCategory:
		switch key {
		case "esc", "backspace":
			m.closeScreens()
		case "up", "k":
			m.category.move(-1)
		case "down", "j":
			m.category.move(1)
		}

	case ScreenDestination:
		switch key {
		case "esc", "backspace":
			m.closeScreens()
		case "a":
			m.destination.showAttractions = !m.destination.showAttractions
		case "left", "h":
			m.destination.movePhoto(-1)
		case "right", "l":
			m.destination.movePhoto(1)
		}

	case ScreenRestaurant:
		if key == "esc" || key == "backspace" {
			m.closeScreens()
		}
	}

	return m, m.previewCmd()
}

func (m Model) updateDiscover(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "tab", "right", "l":
		m.section = (m.section + 1) % sectionCount

	case "shift+tab", "left", "h":
		m.section = (m.section + sectionCount - 1) % sectionCount

	case "up", "k":
		m.cursors[m.section] = clamp(m.cursors[m.section]-1, m.sectionLen(m.section))

	case "down", "j":
		m.cursors[m.section] = clamp(m.cursors[m.section]+1, m.sectionLen(m.section))

	case "enter":
		cursor := m.cursors[m.section]
		switch m.section {
		case sectionCategories:
			return m, m.openCategory(m.categories[cursor].Name)
		case sectionDestinations:
			return m, m.openDestination(m.destinations[cursor].Name)
		case sectionRestaurants:
			m.openRestaurant(m.restaurants[cursor])
		}
	}

	return m, nil
}

func (m Model) sectionLen(section int) int {
	switch section {
	case sectionCategories:
		return len(m.categories)
	case sectionDestinations:
		return len(m.destinations)
	case sectionRestaurants:
		return len(m.restaurants)
	}
	return 0
}

func (m *Model) addLog(event loader.Event) {
	// Filter verbose messages if not in verbose mode
	if event.Level == loader.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{
		Message: event.Message,
		Level:   event.Level,
	})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	dispatcher := &programDispatcher{}
	p := tea.NewProgram(NewModel(settings, dispatcher), tea.WithAltScreen())

	// Loaders are only created from Update, after the program is running.
	dispatcher.send = p.Send

	_, err := p.Run()
	return err
}
