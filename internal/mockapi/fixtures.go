package mockapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed fixtures.json
var defaultFixtures []byte

// Place is a category listing entry in wire form.
type Place struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

// DestinationDetail is a destination object in wire form.
type DestinationDetail struct {
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
}

// Fixtures is the data served by the stub API. Map keys are lower-case names.
type Fixtures struct {
	Categories   map[string][]Place           `json:"categories"`
	Destinations map[string]DestinationDetail `json:"destinations"`

	// Statuses forces a response status for a name on both endpoints.
	Statuses map[string]int `json:"statuses"`

	// Malformed lists names answered with a body that is not valid JSON.
	Malformed []string `json:"malformed"`
}

// DefaultFixtures returns the built-in data set.
func DefaultFixtures() *Fixtures {
	f, err := ParseFixtures(defaultFixtures)
	if err != nil {
		panic(fmt.Sprintf("mockapi: embedded fixtures: %v", err))
	}
	return f
}

// ParseFixtures decodes fixtures from JSON and normalizes keys to lower case.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	f.normalize()
	return &f, nil
}

// LoadFixtures reads fixtures from a JSON file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixtures(data)
}

func (f *Fixtures) normalize() {
	categories := make(map[string][]Place, len(f.Categories))
	for name, places := range f.Categories {
		categories[strings.ToLower(name)] = places
	}
	f.Categories = categories

	destinations := make(map[string]DestinationDetail, len(f.Destinations))
	for name, detail := range f.Destinations {
		destinations[strings.ToLower(name)] = detail
	}
	f.Destinations = destinations

	statuses := make(map[string]int, len(f.Statuses))
	for name, code := range f.Statuses {
		statuses[strings.ToLower(name)] = code
	}
	f.Statuses = statuses

	for i, name := range f.Malformed {
		f.Malformed[i] = strings.ToLower(name)
	}
}

func (f *Fixtures) isMalformed(name string) bool {
	for _, m := range f.Malformed {
		if m == name {
			return true
		}
	}
	return false
}
