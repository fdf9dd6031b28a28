// Package http provides an HTTP client configured for the travel discovery API.
//
// The Client in this package handles:
//   - User-Agent headers
//   - The shared status policy (>= 400 is a *StatusError, body unread)
//   - Optional request timeouts
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10 * time.Second))
//
//	// Fetch JSON
//	body, err := client.Get(ctx, "https://travel.letsbuildthatapp.com/travel_discovery/destination?name=paris")
//
//	// Fetch a thumbnail
//	img, err := client.DownloadBytes(ctx, place.ThumbnailURL)
package http
