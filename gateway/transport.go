package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport sends gateway requests and logs them. It keeps no per-call
// state, so a single instance is safe for concurrent use when the underlying
// HTTPClient is.
type Transport struct {
	client HTTPClient
	logger *slog.Logger
}

// NewTransport creates a transport over client. A nil client falls back to
// http.DefaultClient, a nil logger to slog.Default.
func NewTransport(client HTTPClient, logger *slog.Logger) *Transport {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{client: client, logger: logger}
}

// Post sends body as JSON to url.
func (t *Transport) Post(ctx context.Context, url string, body any) (*Response, error) {
	return t.send(ctx, http.MethodPost, url, body)
}

// Put sends body as JSON to url.
func (t *Transport) Put(ctx context.Context, url string, body any) (*Response, error) {
	return t.send(ctx, http.MethodPut, url, body)
}

// Get requests url.
func (t *Transport) Get(ctx context.Context, url string) (*Response, error) {
	return t.send(ctx, http.MethodGet, url, nil)
}

func (t *Transport) send(ctx context.Context, method, url string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		t.logger.Info("gateway request", "method", method, "url", url, "body", string(encoded))
		reader = bytes.NewReader(encoded)
	} else {
		t.logger.Info("gateway request", "method", method, "url", url)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	t.logger.Debug("gateway request headers", "headers", req.Header)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.logger.Info("gateway response", "status", resp.StatusCode, "body", string(raw))
	t.logger.Debug("gateway response headers", "headers", resp.Header)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Header:     resp.Header,
	}, nil
}
