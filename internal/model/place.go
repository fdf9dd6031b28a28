package model

import "strings"

// Place is a single tile of a category listing.
//
// Place carries only what the category screen renders:
//   - Name for the tile caption
//   - ThumbnailURL for the tile image
//
// Example:
//
//	place := Place{Name: "Louvre", ThumbnailURL: "https://example.com/louvre.jpg"}
//	if place.HasThumbnail() {
//	    // fetch and render the image
//	}
type Place struct {
	// Name is the display name of the place.
	Name string

	// ThumbnailURL is the URL of the tile image.
	// Empty string means the API returned no image.
	ThumbnailURL string
}

// HasThumbnail returns true if the place has an image to load.
func (p Place) HasThumbnail() bool {
	return strings.TrimSpace(p.ThumbnailURL) != ""
}

// PlaceList is the payload of a category listing, in server order.
type PlaceList []Place

// Names returns the place names in listing order.
func (l PlaceList) Names() []string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Name
	}
	return names
}
