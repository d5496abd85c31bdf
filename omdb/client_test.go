package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("testkey", zerolog.Nop(), WithBaseURL(server.URL))
}

func TestFindParamOrder(t *testing.T) {
	// The fixed version and format parameters always come first, then the
	// builder parameters in assembly order.
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"Response": "True", "Title": "Silicon Valley"}`))
	})

	_, err := client.FindByID("tt2575988").
		Kind(KindSeries).
		Year("2014").
		Plot(PlotFull).
		Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v=1&r=json&i=tt2575988&apikey=testkey&type=series&y=2014&plot=full", gotQuery)
}

func TestSearchParamOrder(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"Response": "True", "Search": [], "totalResults": "0"}`))
	})

	_, err := client.Search("Batman").Page(2).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v=1&r=json&s=Batman&apikey=testkey&page=2", gotQuery)
}

func TestFindPrefersIDOverTitle(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"Response": "True"}`))
	})

	// Both selectors set: the ID wins and "t" is omitted entirely.
	query := &FindQuery{client: client, imdbID: "tt0113277", title: "Heat"}
	_, err := query.Get(context.Background())
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "i=tt0113277")
	assert.NotContains(t, gotQuery, "&t=")
}

func TestFindNoSelector(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made without a selector")
	})

	query := &FindQuery{client: client}
	_, err := query.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoSelector)
}

func TestFindSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Response": "True",
			"Title": "The Wizard of Oz",
			"Year": "1939",
			"imdbID": "tt0032138",
			"Type": "movie",
			"imdbRating": "8.1"
		}`))
	})

	movie, err := client.FindByID("tt0032138").Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "The Wizard of Oz", movie.Title)
	assert.Equal(t, "1939", movie.Year)
	assert.Equal(t, "8.1", movie.ImdbRating)
	assert.Equal(t, KindMovie, movie.Kind)
}

func TestFindStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		// Deliberately not JSON: the body must never be decoded on a
		// non-2xx status.
		w.Write([]byte("nope"))
	})

	_, err := client.FindByID("tt0032138").Get(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.True(t, statusErr.IsUnauthorized())
	assert.False(t, statusErr.IsNotFound())
}

func TestFindTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("testkey", zerolog.Nop(), WithBaseURL(server.URL))
	server.Close()

	_, err := client.FindByID("tt0032138").Get(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, errors.Unwrap(transportErr))
}

func TestFindDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	})

	_, err := client.FindByID("tt0032138").Get(context.Background())

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFindFlexibleNumericViolation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "True", "Type": "series", "Season": [1]}`))
	})

	_, err := client.FindByID("tt2575988").Get(context.Background())

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFindAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	})

	_, err := client.FindByTitle("no such movie").Get(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Movie not found!", apiErr.Message)
}

func TestQueryAPIKeyOverride(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"Response": "True"}`))
	})

	_, err := client.FindByID("tt0032138").APIKey("override").Get(context.Background())
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "apikey=override")
	assert.NotContains(t, gotQuery, "testkey")
}

func TestNoAPIKeyOmitsParameter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"Response": "True"}`))
	}))
	defer server.Close()

	client := NewClient("", zerolog.Nop(), WithBaseURL(server.URL))
	_, err := client.FindByID("tt0032138").Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v=1&r=json&i=tt0032138", gotQuery)
}

func TestQueryValueEscaping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the good, the bad & the ugly", r.URL.Query().Get("s"))
		w.Write([]byte(`{"Response": "True"}`))
	})

	_, err := client.Search("the good, the bad & the ugly").Get(context.Background())
	require.NoError(t, err)
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client := NewClient("key", zerolog.Nop(), WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client := NewClient("key", zerolog.Nop(), WithHTTPClient(custom))
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("with base url", func(t *testing.T) {
		client := NewClient("key", zerolog.Nop(), WithBaseURL("http://localhost:9999"))
		assert.Equal(t, "http://localhost:9999/", client.baseURL)
	})

	t.Run("default base url", func(t *testing.T) {
		client := NewClient("key", zerolog.Nop())
		assert.Equal(t, "https://www.omdbapi.com/", client.baseURL)
	})
}

func TestQueryReExecution(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"Response": "True", "Title": "Heat"}`))
	})

	query := client.FindByID("tt0113277")
	for i := 0; i < 2; i++ {
		movie, err := query.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Heat", movie.Title)
	}
	assert.Equal(t, 2, calls)
}
