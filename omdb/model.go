package omdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt decodes a field OMDb encodes as either a JSON number or a
// numeric string, depending on the endpoint and the day of the week.
type flexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *flexInt) UnmarshalJSON(data []byte) error {
	v, err := flexParse(data)
	if err != nil {
		return err
	}
	*f = flexInt(int(v))
	return nil
}

// flexFloat is the floating-point counterpart of flexInt.
type flexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *flexFloat) UnmarshalJSON(data []byte) error {
	v, err := flexParse(data)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexParse accepts exactly two JSON shapes: a number literal, or a string
// containing a number. Everything else is a decode failure.
func flexParse(data []byte) (float64, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid numeric string %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected number or numeric string, got %s", string(data))
	}
}

// rawEpisode mirrors one entry of the "Episodes" array in a series response.
type rawEpisode struct {
	Title      string    `json:"Title"`
	Released   string    `json:"Released"`
	Episode    flexInt   `json:"Episode"`
	ImdbRating flexFloat `json:"imdbRating"`
	ImdbID     string    `json:"imdbID"`
}

// findResponse mirrors the upstream find payload. Every field except
// Response is optional; absent fields stay nil and are defaulted during
// normalization.
type findResponse struct {
	Response string  `json:"Response"`
	Error    *string `json:"Error"`

	Title        *string      `json:"Title"`
	Year         *string      `json:"Year"`
	Rated        *string      `json:"Rated"`
	Released     *string      `json:"Released"`
	Runtime      *string      `json:"Runtime"`
	Genre        *string      `json:"Genre"`
	Director     *string      `json:"Director"`
	Writer       *string      `json:"Writer"`
	Actors       *string      `json:"Actors"`
	Plot         *string      `json:"Plot"`
	Language     *string      `json:"Language"`
	Country      *string      `json:"Country"`
	Awards       *string      `json:"Awards"`
	Poster       *string      `json:"Poster"`
	Metascore    *string      `json:"Metascore"`
	ImdbRating   *string      `json:"imdbRating"`
	ImdbVotes    *string      `json:"imdbVotes"`
	ImdbID       *string      `json:"imdbID"`
	Kind         *string      `json:"Type"`
	Season       *flexInt     `json:"Season"`
	TotalSeasons *flexInt     `json:"totalSeasons"`
	Episodes     []rawEpisode `json:"Episodes"`
}

// searchResponse mirrors the upstream search payload. totalResults is a
// decimal string upstream even though it is always an integer.
type searchResponse struct {
	Response string  `json:"Response"`
	Error    *string `json:"Error"`

	Search       []rawSearchResult `json:"Search"`
	TotalResults *string           `json:"totalResults"`
}

// rawSearchResult mirrors one entry of the "Search" array.
type rawSearchResult struct {
	Title  *string `json:"Title"`
	Year   *string `json:"Year"`
	ImdbID *string `json:"imdbID"`
	Kind   *string `json:"Type"`
	Poster *string `json:"Poster"`
}

// succeeded checks the upstream success flag ("True"/"False", compared
// case-insensitively).
func succeeded(response string) bool {
	return strings.EqualFold(response, "true")
}

// apiError builds the APIError for a failed response, substituting
// "undefined" when the server sent no Error field.
func apiError(msg *string) *APIError {
	if msg == nil {
		return &APIError{Message: "undefined"}
	}
	return &APIError{Message: *msg}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(n *flexInt) int {
	if n == nil {
		return 0
	}
	return int(*n)
}

// kindOrMovie maps an OMDb "Type" token to a Kind. Missing or unrecognized
// tokens fall back to KindMovie rather than failing; OMDb has been known to
// ship tokens outside its documented set.
func kindOrMovie(s *string) Kind {
	if s == nil {
		return KindMovie
	}
	kind, _ := KindFromString(*s)
	return kind
}

// toMovie projects a successful find response into the domain model.
func (r *findResponse) toMovie() (*Movie, error) {
	if !succeeded(r.Response) {
		return nil, apiError(r.Error)
	}

	episodes := make([]Episode, 0, len(r.Episodes))
	for _, ep := range r.Episodes {
		episodes = append(episodes, Episode{
			Title:      ep.Title,
			Released:   ep.Released,
			Episode:    int(ep.Episode),
			ImdbRating: float64(ep.ImdbRating),
			ImdbID:     ep.ImdbID,
		})
	}

	return &Movie{
		Title:        strOrEmpty(r.Title),
		Year:         strOrEmpty(r.Year),
		Rated:        strOrEmpty(r.Rated),
		Released:     strOrEmpty(r.Released),
		Runtime:      strOrEmpty(r.Runtime),
		Genre:        strOrEmpty(r.Genre),
		Director:     strOrEmpty(r.Director),
		Writer:       strOrEmpty(r.Writer),
		Actors:       strOrEmpty(r.Actors),
		Plot:         strOrEmpty(r.Plot),
		Language:     strOrEmpty(r.Language),
		Country:      strOrEmpty(r.Country),
		Awards:       strOrEmpty(r.Awards),
		Poster:       strOrEmpty(r.Poster),
		Metascore:    strOrEmpty(r.Metascore),
		ImdbRating:   strOrEmpty(r.ImdbRating),
		ImdbVotes:    strOrEmpty(r.ImdbVotes),
		ImdbID:       strOrEmpty(r.ImdbID),
		Kind:         kindOrMovie(r.Kind),
		Season:       intOrZero(r.Season),
		TotalSeasons: intOrZero(r.TotalSeasons),
		Episodes:     episodes,
	}, nil
}

// toSearchResults projects a successful search response into the domain model.
func (r *searchResponse) toSearchResults() (*SearchResults, error) {
	if !succeeded(r.Response) {
		return nil, apiError(r.Error)
	}

	results := make([]SearchResult, 0, len(r.Search))
	for _, hit := range r.Search {
		results = append(results, SearchResult{
			Title:  strOrEmpty(hit.Title),
			Year:   strOrEmpty(hit.Year),
			ImdbID: strOrEmpty(hit.ImdbID),
			Poster: strOrEmpty(hit.Poster),
			Kind:   kindOrMovie(hit.Kind),
		})
	}

	total := 0
	if r.TotalResults != nil {
		// Ignore parse failures; OMDb always sends a plain decimal here.
		total, _ = strconv.Atoi(*r.TotalResults)
	}

	return &SearchResults{
		Results:      results,
		TotalResults: total,
	}, nil
}
