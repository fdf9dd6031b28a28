package model

import "fmt"

// Category is an entry of the discover screen's category strip.
type Category struct {
	Name string
	Icon string
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String formats the coordinate with six decimals, e.g. "48.859565, 2.353250".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// Region is a map viewport centered on a coordinate.
type Region struct {
	Center Coordinate

	// Span is the latitude/longitude delta covered by the viewport, in degrees.
	Span float64
}

// Contains reports whether c falls inside the region.
func (r Region) Contains(c Coordinate) bool {
	half := r.Span / 2
	return c.Latitude >= r.Center.Latitude-half && c.Latitude <= r.Center.Latitude+half &&
		c.Longitude >= r.Center.Longitude-half && c.Longitude <= r.Center.Longitude+half
}

// DefaultRegionSpan is the span used when opening a destination's map.
const DefaultRegionSpan = 0.1

// Destination is a popular destination shown on the discover screen.
//
// Destinations are static; only their details are fetched, keyed by Name.
type Destination struct {
	Name     string
	Country  string
	Location Coordinate

	// Attractions are map annotations shown when the user toggles them on.
	Attractions []Attraction
}

// Region returns the map viewport for the destination.
func (d Destination) Region() Region {
	return Region{Center: d.Location, Span: DefaultRegionSpan}
}

// Attraction is a point of interest annotated on a destination map.
type Attraction struct {
	Name     string
	Location Coordinate
}

// Restaurant is a popular place to eat shown on the discover screen.
type Restaurant struct {
	Name     string
	Rating   float64
	Cuisine  string
	Price    string
	Location string
}

// Summary returns the one-line tile subtitle, e.g. "4.7 • Sushi • $$".
func (r Restaurant) Summary() string {
	return fmt.Sprintf("%.1f • %s • %s", r.Rating, r.Cuisine, r.Price)
}

// Categories returns the discover screen categories in display order.
func Categories() []Category {
	return []Category{
		{Name: "Art", Icon: "🎨"},
		{Name: "Sport", Icon: "🏟"},
		{Name: "Live Events", Icon: "🎤"},
		{Name: "Food", Icon: "🍽"},
		{Name: "History", Icon: "📚"},
	}
}

// Destinations returns the popular destinations in display order.
func Destinations() []Destination {
	return []Destination{
		{
			Name:     "Paris",
			Country:  "France",
			Location: Coordinate{Latitude: 48.859565, Longitude: 2.35325},
			Attractions: []Attraction{
				{Name: "Eiffel Tower", Location: Coordinate{Latitude: 48.858605, Longitude: 2.2946}},
				{Name: "Champs-Elysees", Location: Coordinate{Latitude: 48.866867, Longitude: 2.311780}},
				{Name: "Louvre Museum", Location: Coordinate{Latitude: 48.860288, Longitude: 2.337789}},
			},
		},
		{
			Name:     "Tokyo",
			Country:  "Japan",
			Location: Coordinate{Latitude: 35.67988, Longitude: 139.7695},
		},
		{
			Name:     "New York",
			Country:  "US",
			Location: Coordinate{Latitude: 40.71592, Longitude: -74.0055},
		},
	}
}

// Restaurants returns the popular restaurants in display order.
func Restaurants() []Restaurant {
	return []Restaurant{
		{Name: "Japan's Finest Tapas", Rating: 4.7, Cuisine: "Sushi", Price: "$$", Location: "Tokyo, Japan"},
		{Name: "Bar & Grill", Rating: 4.7, Cuisine: "Sushi", Price: "$$", Location: "Tokyo, Japan"},
	}
}

// FindDestination looks up a catalog destination by exact name.
func FindDestination(name string) (Destination, bool) {
	for _, d := range Destinations() {
		if d.Name == name {
			return d, true
		}
	}
	return Destination{}, false
}
