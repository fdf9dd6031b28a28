package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/travel-discovery/internal/travel"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.BaseURL != travel.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", s.BaseURL, travel.DefaultBaseURL)
	}
	if s.CategoryDelay() != 3*time.Second {
		t.Errorf("CategoryDelay() = %v, want 3s", s.CategoryDelay())
	}
	if s.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0", s.Timeout())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BaseURL != travel.DefaultBaseURL {
		t.Errorf("missing file should yield defaults, got BaseURL %q", s.BaseURL)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"base_url": "http://127.0.0.1:8080", "category_min_delay": 0.5}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BaseURL != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.CategoryDelay() != 500*time.Millisecond {
		t.Errorf("CategoryDelay() = %v, want 500ms", s.CategoryDelay())
	}
	if s.MaxConcurrentLoads != 4 {
		t.Errorf("MaxConcurrentLoads = %d, want default 4", s.MaxConcurrentLoads)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{`},
		{"negative delay", `{"category_min_delay": -1}`},
		{"negative timeout", `{"request_timeout": -2}`},
		{"zero concurrency", `{"max_concurrent_loads": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.BaseURL = "http://localhost:9000"
	s.RequestTimeout = 15
	s.ShowThumbnails = false
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BaseURL != s.BaseURL || loaded.Timeout() != 15*time.Second || loaded.ShowThumbnails {
		t.Errorf("loaded = %+v, want %+v", loaded, s)
	}
}

func TestSettings_ToServiceConfig(t *testing.T) {
	s := DefaultSettings()
	s.BaseURL = "http://localhost:9000"
	s.CategoryMinDelay = 1.5

	cfg := s.ToServiceConfig(nil, nil)
	if cfg.BaseURL != s.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, s.BaseURL)
	}
	if cfg.CategoryDelay != 1500*time.Millisecond {
		t.Errorf("CategoryDelay = %v, want 1.5s", cfg.CategoryDelay)
	}
	if cfg.Fetcher == nil {
		t.Error("Fetcher should be set")
	}
}

func TestSettings_BaseURLHost(t *testing.T) {
	s := DefaultSettings()
	if got := s.BaseURLHost(); got != "travel.letsbuildthatapp.com" {
		t.Errorf("BaseURLHost() = %q", got)
	}
	s.BaseURL = "garbage"
	if got := s.BaseURLHost(); got != "garbage" {
		t.Errorf("BaseURLHost() = %q, want %q", got, "garbage")
	}
}
