package model

// DestinationDetail is the payload of a destination detail screen.
//
// PhotoURLs keeps the order returned by the API; the first photo is the
// one shown in the header.
type DestinationDetail struct {
	// Description is the free-text blurb shown under the destination name.
	Description string

	// PhotoURLs lists header photos in display order.
	PhotoURLs []string
}

// CoverPhoto returns the first photo URL, or an empty string if there are none.
func (d DestinationDetail) CoverPhoto() string {
	if len(d.PhotoURLs) == 0 {
		return ""
	}
	return d.PhotoURLs[0]
}
