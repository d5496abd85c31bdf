// Package omdb provides a client for the OMDb movie-metadata API.
//
// The package covers the two operations OMDb offers: resolving a single
// title by IMDb ID or title, and running a free-text search over titles.
// Queries are assembled with chainable builders and executed with a single
// GET; responses are normalized from OMDb's loosely-typed JSON into the
// typed domain model.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := omdb.NewClient("your-api-key", logger)
//
//	movie, err := client.FindByTitle("Silicon Valley").
//		Kind(omdb.KindSeries).
//		Year("2014").
//		Get(ctx)
//
//	results, err := client.Search("Batman").Page(2).Get(ctx)
//
// # Error Handling
//
// Every failure is classified into one of four types:
//
//   - TransportError: the request never produced an HTTP response
//   - StatusError: the server answered outside the 2xx range
//   - DecodeError: the body was not valid JSON for the expected shape
//   - APIError: OMDb itself reported a failure ("Response": "False")
//
// StatusError carries classification helpers:
//
//	var statusErr *omdb.StatusError
//	if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
//		// bad or missing API key
//	}
//
// # Upstream quirks
//
// OMDb returns "N/A" instead of omitting unknown values, encodes some
// numbers as strings and some as JSON numbers, and reports its total result
// count as a decimal string. The client absorbs all of this: numeric-as-text
// fields stay text, genuinely numeric fields accept either wire encoding,
// and an unrecognized media type falls back to KindMovie.
package omdb
