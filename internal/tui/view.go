package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/travel-discovery/internal/loader"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🧭 Travel Discovery"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Discover places to go • %s", m.settings.BaseURLHost())))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenDiscover:
		b.WriteString(m.viewDiscover())
	case ScreenCategory:
		b.WriteString(m.viewCategory())
	case ScreenDestination:
		b.WriteString(m.viewDestination())
	case ScreenRestaurant:
		b.WriteString(m.viewRestaurant())
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewDiscover() string {
	var b strings.Builder

	names := make([]string, len(m.categories))
	for i, c := range m.categories {
		names[i] = c.Icon + " " + c.Name
	}
	b.WriteString(m.renderSection(sectionCategories, "Categories", names))

	names = make([]string, len(m.destinations))
	for i, d := range m.destinations {
		names[i] = fmt.Sprintf("%s, %s", d.Name, d.Country)
	}
	b.WriteString(m.renderSection(sectionDestinations, "Popular destinations", names))

	names = make([]string, len(m.restaurants))
	for i, r := range m.restaurants {
		names[i] = fmt.Sprintf("%s  %s", r.Name, dimStyle.Render(r.Summary()))
	}
	b.WriteString(m.renderSection(sectionRestaurants, "Popular places to eat", names))

	b.WriteString(infoStyle.Render("Search destination:"))
	b.WriteString(" ")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(fmt.Sprintf("\n  %s Verbose/debug output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) renderSection(section int, title string, items []string) string {
	var b strings.Builder

	active := section == m.section
	if active {
		b.WriteString(subtitleStyle.Bold(true).Render("▸ " + title))
	} else {
		b.WriteString(subtitleStyle.Render("  " + title))
	}
	b.WriteString("\n")

	for i, item := range items {
		if active && i == m.cursors[section] {
			b.WriteString(selectedStyle.Render("  › " + item))
		} else {
			b.WriteString("    " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewCategory() string {
	s := m.category
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(s.name))
	b.WriteString("\n\n")

	switch s.state.Status {
	case loader.StatusLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("Loading places..."))
		b.WriteString("\n")

	case loader.StatusFailed:
		b.WriteString(viewFailure(s.state.Message))

	case loader.StatusLoaded:
		places := s.state.Payload
		if len(places) == 0 {
			b.WriteString(dimStyle.Render("No places found"))
			b.WriteString("\n")
			break
		}

		for i, place := range places {
			if i == s.cursor {
				b.WriteString(selectedStyle.Render("› " + place.Name))
			} else {
				b.WriteString("  " + place.Name)
			}
			b.WriteString("\n")
		}

		if preview, ok := s.previews.rendered[s.cursor]; ok {
			b.WriteString("\n")
			b.WriteString(preview)
			b.WriteString("\n")
		} else if place := places[s.cursor]; place.HasThumbnail() {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(place.ThumbnailURL))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewDestination() string {
	s := m.destination
	var b strings.Builder

	title := s.name
	if s.known {
		title = fmt.Sprintf("%s, %s", s.info.Name, s.info.Country)
	}
	b.WriteString(subtitleStyle.Render(title))
	b.WriteString("\n")

	if s.known {
		region := s.info.Region()
		b.WriteString(dimStyle.Render(fmt.Sprintf("Map: %s (±%.2f°)", region.Center, region.Span/2)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch s.state.Status {
	case loader.StatusLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("Loading details..."))
		b.WriteString("\n")

	case loader.StatusFailed:
		b.WriteString(viewFailure(s.state.Message))

	case loader.StatusLoaded:
		detail := s.state.Payload
		b.WriteString(lipgloss.NewStyle().Width(m.contentWidth()).Render(detail.Description))
		b.WriteString("\n\n")

		if len(detail.PhotoURLs) == 0 {
			b.WriteString(dimStyle.Render("No photos"))
			b.WriteString("\n")
			break
		}

		b.WriteString(infoStyle.Render(fmt.Sprintf("Photo %d/%d", s.photo+1, len(detail.PhotoURLs))))
		b.WriteString("\n")
		if preview, ok := s.previews.rendered[s.photo]; ok {
			b.WriteString(preview)
		} else {
			b.WriteString(dimStyle.Render(detail.PhotoURLs[s.photo]))
		}
		b.WriteString("\n")
	}

	if s.known && s.showAttractions {
		region := s.info.Region()
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("Attractions:"))
		b.WriteString("\n")
		for _, a := range s.info.Attractions {
			line := fmt.Sprintf("  📍 %s (%s)", a.Name, a.Location)
			if !region.Contains(a.Location) {
				line += dimStyle.Render(" off map")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewRestaurant() string {
	r := m.restaurant

	return boxStyle.Render(fmt.Sprintf(
		"🍽  %s\n\n%s\n%s",
		r.Name,
		r.Summary(),
		r.Location,
	))
}

func viewFailure(message string) string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Could not load:"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s", message))
	b.WriteString("\n")

	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(20, m.width-4)
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case loader.LevelError:
			style = errorStyle
			prefix = "✗"
		case loader.LevelWarning:
			style = warningStyle
			prefix = "!"
		case loader.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case loader.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	if m.searching {
		return "enter: open destination • esc: cancel"
	}
	switch m.screen {
	case ScreenDiscover:
		return "tab: section • ↑/↓: select • enter: open • /: search • v: verbose • q: quit"
	case ScreenCategory:
		return "↑/↓: select • esc: back"
	case ScreenDestination:
		return "←/→: photo • a: attractions • esc: back"
	case ScreenRestaurant:
		return "esc: back"
	}
	return ""
}
