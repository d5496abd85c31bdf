package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediaquery/omdb/omdb"
)

var (
	byID     bool
	byTitle  bool
	plotFlag string
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <imdb-id or title>",
	Short: "Resolve a single title",
	Long: `Resolve a single title by IMDb ID or by name. Arguments starting with
"tt" are treated as IMDb IDs unless --title forces a name lookup.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&byID, "id", false, "treat the argument as an IMDb ID")
	findCmd.Flags().BoolVar(&byTitle, "title", false, "treat the argument as a title")
	findCmd.Flags().StringVarP(&kindFlag, "type", "t", "", "restrict to a media type (movie/series/episode/game)")
	findCmd.Flags().StringVarP(&yearFlag, "year", "y", "", "restrict to a year or range (e.g. 2014-)")
	findCmd.Flags().StringVar(&plotFlag, "plot", "", "plot length (short/full)")
	findCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
}

func runFind(cmd *cobra.Command, args []string) error {
	selector := strings.Join(args, " ")

	var query *omdb.FindQuery
	switch {
	case byID && byTitle:
		return fmt.Errorf("--id and --title are mutually exclusive")
	case byID:
		query = client.FindByID(selector)
	case byTitle:
		query = client.FindByTitle(selector)
	case looksLikeImdbID(selector):
		query = client.FindByID(selector)
	default:
		query = client.FindByTitle(selector)
	}

	if kindFlag != "" {
		kind, err := parseKind(kindFlag)
		if err != nil {
			return err
		}
		query.Kind(kind)
	}
	if yearFlag != "" {
		query.Year(yearFlag)
	}
	if plotFlag != "" {
		switch strings.ToLower(plotFlag) {
		case "short":
			query.Plot(omdb.PlotShort)
		case "full":
			query.Plot(omdb.PlotFull)
		default:
			return fmt.Errorf("invalid plot length %q (must be short or full)", plotFlag)
		}
	}

	movie, err := query.Get(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(movie)
	}

	printMovie(movie)
	return nil
}

// looksLikeImdbID reports whether a selector has the shape of an IMDb ID
// (tt followed by digits).
func looksLikeImdbID(s string) bool {
	if !strings.HasPrefix(s, "tt") || len(s) < 3 {
		return false
	}
	for _, r := range s[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func printMovie(movie *omdb.Movie) {
	fmt.Printf("%s (%s) [%s]\n", movie.Title, movie.Year, movie.Kind)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("IMDb ID:  %s\n", movie.ImdbID)
	fmt.Printf("Rated:    %s\n", movie.Rated)
	fmt.Printf("Released: %s\n", movie.Released)
	fmt.Printf("Runtime:  %s\n", movie.Runtime)
	fmt.Printf("Genre:    %s\n", movie.Genre)
	fmt.Printf("Director: %s\n", movie.Director)
	fmt.Printf("Actors:   %s\n", movie.Actors)
	fmt.Printf("Rating:   %s (%s votes, metascore %s)\n", movie.ImdbRating, movie.ImdbVotes, movie.Metascore)
	if movie.Plot != "" {
		fmt.Printf("\n%s\n", movie.Plot)
	}

	if movie.IsSeries() {
		fmt.Printf("\nSeason %d of %d\n", movie.Season, movie.TotalSeasons)
		for _, ep := range movie.Episodes {
			fmt.Printf("  %2d. %s (%s) rated %.1f\n", ep.Episode, ep.Title, ep.Released, ep.ImdbRating)
		}
	}
}
