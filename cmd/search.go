package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediaquery/omdb/filter"
)

var (
	pageFlag   int
	filterExpr string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <terms>",
	Short: "Search titles by free text",
	Long: `Run a free-text search against OMDb. Results are paginated; request
further pages with --page. The --filter flag narrows the returned page
client-side with an expression, e.g.:

  omdb search batman --filter 'Kind == "series" && startsWith(Year, "20")'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&kindFlag, "type", "t", "", "restrict to a media type (movie/series/episode/game)")
	searchCmd.Flags().StringVarP(&yearFlag, "year", "y", "", "restrict to a year or range (e.g. 2014-)")
	searchCmd.Flags().IntVarP(&pageFlag, "page", "p", 0, "result page to request (1-based)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
	searchCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	terms := strings.Join(args, " ")

	query := client.Search(terms)
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
	if pageFlag > 0 {
		query.Page(pageFlag)
	}

	logger.Info().Str("terms", terms).Msg("Searching OMDb")

	results, err := query.Get(context.Background())
	if err != nil {
		return err
	}

	hits := results.Results
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		hits, err = f.Apply(hits)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No results.")
		return nil
	}

	fmt.Printf("Showing %d of %d total results:\n", len(hits), results.TotalResults)
	fmt.Println(strings.Repeat("-", 60))
	for _, hit := range hits {
		fmt.Printf("%-10s %-8s %s (%s)\n", hit.ImdbID, hit.Kind, hit.Title, hit.Year)
	}

	return nil
}
