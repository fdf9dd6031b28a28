package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/travel-discovery/internal/http"
	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/travel"
)

// Settings holds all configuration options.
type Settings struct {
	// API settings
	BaseURL        string  `json:"base_url"`
	UserAgent      string  `json:"user_agent"`
	RequestTimeout float64 `json:"request_timeout"` // seconds, 0 = no timeout

	// CategoryMinDelay is the pause, in seconds, between a category response
	// and the category screen leaving its loading state.
	CategoryMinDelay float64 `json:"category_min_delay"`

	// CLI settings
	MaxConcurrentLoads int `json:"max_concurrent_loads"`

	// TUI settings
	ShowThumbnails bool `json:"show_thumbnails"`
	ThumbnailWidth int  `json:"thumbnail_width"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:        travel.DefaultBaseURL,
		UserAgent:      http.DefaultUserAgent,
		RequestTimeout: 0,

		CategoryMinDelay: travel.DefaultCategoryDelay.Seconds(),

		MaxConcurrentLoads: 4,

		ShowThumbnails: true,
		ThumbnailWidth: 32,
	}
}

// DefaultPath returns ~/.config/travel-discovery/config.json, or a relative
// path if the config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "travel-discovery.json"
	}
	return filepath.Join(dir, "travel-discovery", "config.json")
}

// Load reads settings from a JSON file.
//
// A missing file yields DefaultSettings. Fields absent from the file keep
// their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise fail later in surprising ways.
//
// An unparsable BaseURL is not rejected here: loaders report it per screen as
// an invalid request.
func (s *Settings) Validate() error {
	if s.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if s.CategoryMinDelay < 0 {
		return fmt.Errorf("category_min_delay must not be negative")
	}
	if s.MaxConcurrentLoads < 1 {
		return fmt.Errorf("max_concurrent_loads must be at least 1")
	}
	if s.ThumbnailWidth < 0 {
		return fmt.Errorf("thumbnail_width must not be negative")
	}
	return nil
}

// BaseURLHost returns the host of BaseURL for display, or BaseURL itself.
func (s *Settings) BaseURLHost() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" {
		return s.BaseURL
	}
	return u.Host
}

// CategoryDelay returns CategoryMinDelay as a duration.
func (s *Settings) CategoryDelay() time.Duration {
	return seconds(s.CategoryMinDelay)
}

// Timeout returns RequestTimeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return seconds(s.RequestTimeout)
}

// NewHTTPClient creates the API client described by the settings.
func (s *Settings) NewHTTPClient() *http.Client {
	return http.NewClient(
		http.WithTimeout(s.Timeout()),
		http.WithUserAgent(s.UserAgent),
	)
}

// ToServiceConfig converts settings to a travel.Config.
func (s *Settings) ToServiceConfig(dispatcher loader.Dispatcher, onEvent func(loader.Event)) travel.Config {
	return travel.Config{
		BaseURL:       s.BaseURL,
		CategoryDelay: s.CategoryDelay(),
		Fetcher:       s.NewHTTPClient(),
		Dispatcher:    dispatcher,
		OnEvent:       onEvent,
	}
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
