package dto

import (
	"fmt"

	"github.com/handiism/travel-discovery/internal/model"
)

// JSONDestinationDetail is the object returned by the destination endpoint.
type JSONDestinationDetail struct {
	Description *string   `json:"description"`
	Photos      []*string `json:"photos"`
}

// ToDestinationDetail converts JSONDestinationDetail to a model.DestinationDetail.
func (jd *JSONDestinationDetail) ToDestinationDetail() (model.DestinationDetail, error) {
	if jd.Description == nil {
		return model.DestinationDetail{}, fmt.Errorf("missing field %q", "description")
	}
	if jd.Photos == nil {
		return model.DestinationDetail{}, fmt.Errorf("missing field %q", "photos")
	}

	photos := make([]string, len(jd.Photos))
	for i, photo := range jd.Photos {
		if photo == nil {
			return model.DestinationDetail{}, fmt.Errorf("photo %d: missing", i)
		}
		photos[i] = *photo
	}

	return model.DestinationDetail{
		Description: *jd.Description,
		PhotoURLs:   photos,
	}, nil
}
