// Package httpapi implements the dashboard data providers as JSON clients
// over upstream HTTP services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// client is the transport shared by the three API clients.
type client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func newClient(baseURL, name string, logger *slog.Logger) client {
	return client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("adapter", name),
	}
}

// statusError reports a non-200 upstream response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// errDecode marks a response body that could not be parsed.
var errDecode = errors.New("malformed response body")

// getJSON issues a GET request and decodes a 200 response into out.
// Transport failures come back as-is, non-200 statuses as *statusError and
// parse failures wrapped around errDecode. The caller maps these onto its
// provider error kinds.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	c.log.DebugContext(ctx, "upstream request", slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	return nil
}

// statusOf extracts the upstream status code from an error returned by
// getJSON.
func statusOf(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.code, true
	}
	return 0, false
}
