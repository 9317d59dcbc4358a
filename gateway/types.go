// Package gateway provides the HTTP transport of the CSOB gateway client.
//
// The transport handles:
//   - Sending signed JSON payloads (POST/PUT) and signed URLs (GET)
//   - Request/response diagnostics via structured logging
//   - URL construction from the gateway base URL and endpoint templates
//
// # Usage
//
// Create a transport and send a payload:
//
//	transport := gateway.NewTransport(&http.Client{}, logger)
//	resp, err := transport.Post(ctx, url, fields)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The transport only moves bytes; response signature verification lives in
// the verify package.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the transport-level result of a gateway call: status code,
// raw body and headers. Verification and payload extraction happen in the
// verify package.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// JSON decodes the response body into v. Numbers decode as json.Number so
// untyped destinations keep the exact wire form, which signature
// verification depends on.
func (r *Response) JSON(v any) error {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// HTTPError reports a gateway response with a failure status code. It is a
// transport error, distinct from signature verification failures.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gateway returned HTTP %d: %s", e.StatusCode, e.Body)
}
