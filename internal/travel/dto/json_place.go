package dto

import (
	"fmt"

	"github.com/handiism/travel-discovery/internal/model"
)

// JSONPlace is one element of a category listing as sent by the API.
//
// Both fields are required; pointers let ToPlace tell a missing key from an
// empty string.
type JSONPlace struct {
	Name      *string `json:"name"`
	Thumbnail *string `json:"thumbnail"`
}

// ToPlace converts JSONPlace to a model.Place.
func (jp *JSONPlace) ToPlace() (model.Place, error) {
	if jp.Name == nil {
		return model.Place{}, fmt.Errorf("missing field %q", "name")
	}
	if jp.Thumbnail == nil {
		return model.Place{}, fmt.Errorf("missing field %q", "thumbnail")
	}
	return model.Place{Name: *jp.Name, ThumbnailURL: *jp.Thumbnail}, nil
}

// JSONPlaceList is the top-level array returned by the category endpoint.
type JSONPlaceList []JSONPlace

// ToPlaceList converts every element, keeping order. A nil list (JSON null)
// is rejected.
func (jl JSONPlaceList) ToPlaceList() (model.PlaceList, error) {
	if jl == nil {
		return nil, fmt.Errorf("expected an array of places")
	}
	places := make(model.PlaceList, 0, len(jl))
	for i := range jl {
		place, err := jl[i].ToPlace()
		if err != nil {
			return nil, fmt.Errorf("place %d: %w", i, err)
		}
		places = append(places, place)
	}
	return places, nil
}
