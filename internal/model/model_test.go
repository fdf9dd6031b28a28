package model

import "testing"

func TestPlace_HasThumbnail(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/a.jpg", true},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := (Place{Name: "x", ThumbnailURL: tt.url}).HasThumbnail(); got != tt.want {
				t.Errorf("HasThumbnail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceList_Names(t *testing.T) {
	list := PlaceList{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	names := list.Names()

	want := []string{"b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDestinationDetail_CoverPhoto(t *testing.T) {
	d := DestinationDetail{PhotoURLs: []string{"first", "second"}}
	if d.CoverPhoto() != "first" {
		t.Errorf("CoverPhoto() = %q, want %q", d.CoverPhoto(), "first")
	}

	if (DestinationDetail{}).CoverPhoto() != "" {
		t.Error("CoverPhoto() should be empty without photos")
	}
}

func TestCatalog(t *testing.T) {
	categories := Categories()
	if len(categories) != 5 {
		t.Fatalf("got %d categories, want 5", len(categories))
	}
	if categories[2].Name != "Live Events" {
		t.Errorf("categories[2] = %q, want %q", categories[2].Name, "Live Events")
	}

	if len(Destinations()) != 3 {
		t.Errorf("got %d destinations, want 3", len(Destinations()))
	}
	if len(Restaurants()) != 2 {
		t.Errorf("got %d restaurants, want 2", len(Restaurants()))
	}
}

func TestFindDestination(t *testing.T) {
	paris, ok := FindDestination("Paris")
	if !ok {
		t.Fatal("Paris should be in the catalog")
	}
	if paris.Country != "France" {
		t.Errorf("Country = %q, want %q", paris.Country, "France")
	}
	if len(paris.Attractions) != 3 {
		t.Errorf("got %d attractions, want 3", len(paris.Attractions))
	}

	if _, ok := FindDestination("paris"); ok {
		t.Error("lookup should be case sensitive")
	}
}

func TestRegion_Contains(t *testing.T) {
	paris, _ := FindDestination("Paris")
	region := paris.Region()

	if region.Span != DefaultRegionSpan {
		t.Errorf("Span = %v, want %v", region.Span, DefaultRegionSpan)
	}
	louvre := paris.Attractions[2]
	if !region.Contains(louvre.Location) {
		t.Errorf("region should contain %s (%s)", louvre.Name, louvre.Location)
	}

	tokyo, _ := FindDestination("Tokyo")
	if region.Contains(tokyo.Location) {
		t.Error("Paris region should not contain Tokyo")
	}
}

func TestRestaurant_Summary(t *testing.T) {
	r := Restaurants()[0]
	if got, want := r.Summary(), "4.7 • Sushi • $$"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Latitude: 48.859565, Longitude: 2.35325}
	if got, want := c.String(), "48.859565, 2.353250"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
