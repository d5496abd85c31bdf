package omdb

import (
	"context"
	"encoding/json"
	"strconv"
)

// FindQuery selects a single title by IMDb ID or by title. Build one with
// Client.FindByID or Client.FindByTitle, chain the optional setters, then
// call Get. A FindQuery is a plain value: it holds no network resources and
// may be re-executed, but a single instance must not be shared between
// goroutines.
type FindQuery struct {
	client *Client

	imdbID string
	title  string

	apiKey string
	kind   *Kind
	year   string
	plot   *Plot
}

// FindByID starts a find query selecting by IMDb ID.
func (c *Client) FindByID(imdbID string) *FindQuery {
	return &FindQuery{client: c, imdbID: imdbID}
}

// FindByTitle starts a find query selecting by title.
func (c *Client) FindByTitle(title string) *FindQuery {
	return &FindQuery{client: c, title: title}
}

// Kind restricts the result to a kind of media.
func (q *FindQuery) Kind(kind Kind) *FindQuery {
	q.kind = &kind
	return q
}

// Year restricts the result to a year. The API accepts ranges like "2014-",
// so the value is passed through as text.
func (q *FindQuery) Year(year string) *FindQuery {
	q.year = year
	return q
}

// APIKey overrides the client-level API key for this query.
func (q *FindQuery) APIKey(apiKey string) *FindQuery {
	q.apiKey = apiKey
	return q
}

// Plot selects the plot summary length.
func (q *FindQuery) Plot(plot Plot) *FindQuery {
	q.plot = &plot
	return q
}

// Get executes the query and returns the resolved title. Exactly one
// request is made; no retries. The returned Movie is fully normalized, or
// the error is one of TransportError, StatusError, DecodeError or APIError.
func (q *FindQuery) Get(ctx context.Context) (*Movie, error) {
	var params []param

	// The IMDb ID wins if both selectors were somehow set.
	switch {
	case q.imdbID != "":
		params = append(params, param{"i", q.imdbID})
	case q.title != "":
		params = append(params, param{"t", q.title})
	default:
		return nil, ErrNoSelector
	}

	if key := q.keyOrDefault(); key != "" {
		params = append(params, param{"apikey", key})
	}
	if q.kind != nil {
		params = append(params, param{"type", q.kind.String()})
	}
	if q.year != "" {
		params = append(params, param{"y", q.year})
	}
	if q.plot != nil {
		params = append(params, param{"plot", q.plot.String()})
	}

	body, err := q.client.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var raw findResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return raw.toMovie()
}

func (q *FindQuery) keyOrDefault() string {
	if q.apiKey != "" {
		return q.apiKey
	}
	return q.client.apiKey
}

// SearchQuery runs a free-text search returning one page of results. Build
// one with Client.Search; the same value semantics as FindQuery apply.
type SearchQuery struct {
	client *Client

	search string

	apiKey string
	kind   *Kind
	year   string
	page   int
}

// Search starts a free-text search query.
func (c *Client) Search(terms string) *SearchQuery {
	return &SearchQuery{client: c, search: terms}
}

// APIKey overrides the client-level API key for this query.
func (q *SearchQuery) APIKey(apiKey string) *SearchQuery {
	q.apiKey = apiKey
	return q
}

// Kind restricts results to a kind of media.
func (q *SearchQuery) Kind(kind Kind) *SearchQuery {
	q.kind = &kind
	return q
}

// Year restricts results to a year.
func (q *SearchQuery) Year(year string) *SearchQuery {
	q.year = year
	return q
}

// Page selects the 1-based result page. The API does not paginate
// automatically; request each page explicitly.
func (q *SearchQuery) Page(page int) *SearchQuery {
	q.page = page
	return q
}

// Get executes the search. See FindQuery.Get for the error contract.
func (q *SearchQuery) Get(ctx context.Context) (*SearchResults, error) {
	params := []param{{"s", q.search}}

	if key := q.keyOrDefault(); key != "" {
		params = append(params, param{"apikey", key})
	}
	if q.kind != nil {
		params = append(params, param{"type", q.kind.String()})
	}
	if q.year != "" {
		params = append(params, param{"y", q.year})
	}
	if q.page > 0 {
		params = append(params, param{"page", strconv.Itoa(q.page)})
	}

	body, err := q.client.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return raw.toSearchResults()
}

func (q *SearchQuery) keyOrDefault() string {
	if q.apiKey != "" {
		return q.apiKey
	}
	return q.client.apiKey
}
