// Package config provides configuration management for travel-discovery.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to travel.Config for the loader service
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Talks to https://travel.letsbuildthatapp.com
//	// Category screens resolve 3s after the response
//	// No request timeout
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist; errors only on bad content
//	}
//
// # Saving Settings
//
//	settings.BaseURL = "http://127.0.0.1:8080"
//	err := settings.Save(config.DefaultPath())
//
// # Wiring
//
//	svc := travel.NewService(settings.ToServiceConfig(loader.Inline, nil))
package config
