package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPError represents a non-2xx response from a source endpoint.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("feed: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// download performs a GET and returns the full response body.
//
// A failed download is fatal to the run; there is deliberately no retry here.
func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return body, nil
}
