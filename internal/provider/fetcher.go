package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ DocumentFetcher = (*HTTPFetcher)(nil)

// defaultFetchTimeout bounds a fetch when no timeout is configured.
const defaultFetchTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is echoed into an error.
const maxErrorBody = 512

// HTTPFetcher retrieves rate documents over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a new HTTPFetcher. A non-positive timeout falls back
// to the default.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the document at url and parses it.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*RateDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: request creation for %s: %w", ErrFetchFailed, url, err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrFetchFailed, url, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s: %w", ErrFetchFailed, url, err)
	}

	doc, err := ParseDocument(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}
