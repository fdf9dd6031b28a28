package travel

import (
	"encoding/json"
	"fmt"

	"github.com/handiism/travel-discovery/internal/model"
	"github.com/handiism/travel-discovery/internal/travel/dto"
)

// DecodePlaceList parses a category listing body.
//
// Returns an error if:
//   - The body is not valid JSON or not an array
//   - Any element is missing "name" or "thumbnail"
func DecodePlaceList(data []byte) (model.PlaceList, error) {
	var list dto.JSONPlaceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse category JSON: %w", err)
	}
	return list.ToPlaceList()
}

// DecodeDestinationDetail parses a destination detail body.
//
// Returns an error if:
//   - The body is not valid JSON or not an object
//   - "description" or "photos" is missing or null
func DecodeDestinationDetail(data []byte) (model.DestinationDetail, error) {
	var jd *dto.JSONDestinationDetail
	if err := json.Unmarshal(data, &jd); err != nil {
		return model.DestinationDetail{}, fmt.Errorf("failed to parse destination JSON: %w", err)
	}
	if jd == nil {
		return model.DestinationDetail{}, fmt.Errorf("expected a destination object")
	}
	return jd.ToDestinationDetail()
}
