package ose

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const DefaultEndpoint = "https://extranet.trainose.gr/services/passenger_public/mobile_app/ajax.php"

// Client talks to the undocumented mobile-app endpoint. Every operation is a
// GET against the same ajax.php with a different op parameter.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{},
	}
}

// UpstreamFetchError wraps any transport or decode failure talking to the
// operator API. The client never retries.
type UpstreamFetchError struct {
	Operation string
	Err       error
}

func (e UpstreamFetchError) Error() string {
	return fmt.Sprintf("upstream fetch failed for %s: %s", e.Operation, e.Err)
}

func (e UpstreamFetchError) Unwrap() error {
	return e.Err
}

func (c *Client) get(ctx context.Context, operation string, params url.Values, result any) error {
	requestURL := fmt.Sprintf("%s?%s", c.Endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return UpstreamFetchError{Operation: operation, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return UpstreamFetchError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UpstreamFetchError{Operation: operation, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return UpstreamFetchError{Operation: operation, Err: err}
	}

	return nil
}
