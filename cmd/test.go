package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediaquery/omdb/omdb"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Verify the configured API key",
	Long:  `Issue a single known lookup against OMDb to verify the API key works.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing OMDb API key...")

	// Any well-known ID works; The Shawshank Redemption is not going anywhere.
	movie, err := client.FindByID("tt0111161").Get(context.Background())
	if err != nil {
		var statusErr *omdb.StatusError
		if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
			return fmt.Errorf("API key rejected: %w", err)
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Println("✓ API key works!")
	fmt.Printf("  Resolved: %s (%s)\n", movie.Title, movie.Year)
	return nil
}
