package omdb

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://www.omdbapi.com/"

	// apiVersion is the fixed protocol version token sent with every request.
	apiVersion = "1"
)

// Client wraps the OMDb API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client. The API key may be empty if every
// query supplies its own via APIKey.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// param is a single query parameter. Parameters are kept as an ordered
// slice rather than url.Values because the outgoing query string preserves
// assembly order (url.Values.Encode sorts keys).
type param struct {
	key   string
	value string
}

// get performs a single GET against the API endpoint, always prepending the
// fixed protocol version and response format parameters ahead of the
// caller-supplied ones. It classifies the outcome: a network failure becomes
// a TransportError, a non-2xx status becomes a StatusError without touching
// the body, and a 2xx response yields the raw body for decoding.
func (c *Client) get(ctx context.Context, params []param) ([]byte, error) {
	fixed := []param{
		{"v", apiVersion},
		{"r", "json"},
	}

	var query strings.Builder
	for i, p := range append(fixed, params...) {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(p.key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.value))
	}

	requestURL := c.baseURL + "?" + query.String()
	c.logger.Debug().Str("url", requestURL).Msg("Making OMDb API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return body, nil
}
