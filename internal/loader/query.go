package loader

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// EncodeQuery lower-cases name and percent-encodes it for a query value.
//
// Spaces are encoded as %20 rather than '+':
//
//	EncodeQuery("New York") // "new%20york"
//	EncodeQuery("Café")     // "caf%C3%A9"
func EncodeQuery(name string) string {
	return strings.ReplaceAll(url.QueryEscape(strings.ToLower(name)), "+", "%20")
}

// BuildURL joins base and path and sets the encoded name as the "name" query
// parameter. Other query parameters of base are preserved.
//
// Returns an error wrapping ErrInvalidRequest if:
//   - name is not valid UTF-8
//   - base cannot be parsed or is not an absolute URL
func BuildURL(base, path, name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: name is not valid UTF-8", ErrInvalidRequest)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidRequest, base)
	}

	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawPath = ""
	u.Fragment = ""

	// Parameters already on the base URL are kept; name is always last.
	query := u.Query()
	query.Del("name")
	u.RawQuery = query.Encode()
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += "name=" + EncodeQuery(name)

	return u.String(), nil
}
