package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/moventis/csob-client/payload"
)

// JoinURL joins the gateway base URL with an endpoint path.
func JoinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(endpoint, "/")
}

// SignedURL builds the URL of a GET endpoint whose request payload travels
// in the path: every field value, the trailing signature included, is
// query-escaped and appended as a path segment.
func SignedURL(base, endpoint string, fields payload.Fields) (string, error) {
	segments := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field.Value.Cart()) > 0 {
			return "", fmt.Errorf("field %q: cart values cannot travel in a URL", field.Key)
		}
		segments = append(segments, url.QueryEscape(field.Value.Text()))
	}
	return JoinURL(base, endpoint) + "/" + strings.Join(segments, "/"), nil
}
