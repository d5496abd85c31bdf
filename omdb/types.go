package omdb

// Kind represents the type of media a title is classified as.
// It corresponds to OMDb's "Type" field.
type Kind int

const (
	// KindMovie represents a feature film
	KindMovie Kind = iota
	// KindSeries represents a TV series
	KindSeries
	// KindEpisode represents a single episode of a series
	KindEpisode
	// KindGame represents a video game
	KindGame
)

// String returns the lowercase wire token for the kind.
func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindEpisode:
		return "episode"
	case KindGame:
		return "game"
	default:
		return "movie"
	}
}

// KindFromString parses an OMDb "Type" token. The second return value
// reports whether the token matched one of the four known kinds.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "movie":
		return KindMovie, true
	case "series":
		return KindSeries, true
	case "episode":
		return KindEpisode, true
	case "game":
		return KindGame, true
	default:
		return KindMovie, false
	}
}

// Plot represents the requested plot-summary length. It is only ever sent
// as a request parameter, never decoded from a response.
type Plot int

const (
	// PlotShort requests the abbreviated plot summary
	PlotShort Plot = iota
	// PlotFull requests the complete plot summary
	PlotFull
)

// String returns the wire token for the plot length.
func (p Plot) String() string {
	if p == PlotFull {
		return "full"
	}
	return "short"
}

// Movie is a single resolved title from OMDb.
//
// OMDb returns "N/A" rather than omitting values it does not have, so the
// numeric-looking fields (Metascore, ImdbRating, ImdbVotes) are kept as
// text. Season, TotalSeasons and Episodes are only meaningful when
// Kind == KindSeries.
type Movie struct {
	Title        string    `json:"title"`
	Year         string    `json:"year"`
	Rated        string    `json:"rated"`
	Released     string    `json:"released"`
	Runtime      string    `json:"runtime"`
	Genre        string    `json:"genre"`
	Director     string    `json:"director"`
	Writer       string    `json:"writer"`
	Actors       string    `json:"actors"`
	Plot         string    `json:"plot"`
	Language     string    `json:"language"`
	Country      string    `json:"country"`
	Awards       string    `json:"awards"`
	Poster       string    `json:"poster"`
	Metascore    string    `json:"metascore"`
	ImdbRating   string    `json:"imdb_rating"`
	ImdbVotes    string    `json:"imdb_votes"`
	ImdbID       string    `json:"imdb_id"`
	Kind         Kind      `json:"kind"`
	Season       int       `json:"season"`
	TotalSeasons int       `json:"total_seasons"`
	Episodes     []Episode `json:"episodes"`
}

// IsSeries reports whether the title is a TV series.
func (m *Movie) IsSeries() bool {
	return m.Kind == KindSeries
}

// Episode is a single episode belonging to a series response.
type Episode struct {
	Title      string  `json:"title"`
	Released   string  `json:"released"`
	Episode    int     `json:"episode"`
	ImdbRating float64 `json:"imdb_rating"`
	ImdbID     string  `json:"imdb_id"`
}

// SearchResults holds one page of free-text search results.
type SearchResults struct {
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// SearchResult is a single search hit. It carries less information than a
// full Movie; use a find query with the ImdbID to resolve the rest.
type SearchResult struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	ImdbID string `json:"imdb_id"`
	Poster string `json:"poster"`
	Kind   Kind   `json:"kind"`
}
