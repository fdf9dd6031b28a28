package loader

import (
	"errors"
	"fmt"

	"github.com/handiism/travel-discovery/internal/http"
)

// Messages carried by Failed states.
const (
	MsgInvalidRequest = "invalid request"
	MsgNetworkError   = "network error"
	MsgDecodeError    = "decode error"
)

var (
	// ErrInvalidRequest means the target URL could not be built. No request is sent.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTransport means the request got no response (connectivity, DNS, timeout).
	ErrTransport = errors.New("transport error")

	// ErrDecode means the body did not match the expected payload shape.
	ErrDecode = errors.New("decode error")

	// ErrClosed is returned by Wait when the loader was closed before resolving.
	ErrClosed = errors.New("loader closed")
)

// failureMessage maps a load error to the message shown to the presentation layer.
//
// Status errors win over everything else; any error that is not one of the
// known kinds is reported as a network error.
func failureMessage(err error) string {
	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Bad status: %d", statusErr.Code)
	case errors.Is(err, ErrInvalidRequest):
		return MsgInvalidRequest
	case errors.Is(err, ErrDecode):
		return MsgDecodeError
	default:
		return MsgNetworkError
	}
}
