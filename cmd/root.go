package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediaquery/omdb/config"
	"github.com/mediaquery/omdb/omdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *omdb.Client

	// Command flags
	apiKey     string
	kindFlag   string
	yearFlag   string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "omdb",
	Short: "Look up movie metadata from the OMDb API",
	Long: `omdb is a CLI for the OMDb movie-metadata API. It can resolve a single
title by IMDb ID or name, and run free-text searches with optional
client-side filtering of the results.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version information displayed by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "OMDb API key (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override API key from command line if specified
	if apiKey != "" {
		cfg.OMDb.APIKey = apiKey
	}

	if cfg.OMDb.APIKey == "" {
		return fmt.Errorf("no API key configured: set omdb.api_key, OMDB_API_KEY or --api-key")
	}

	client = omdb.NewClient(cfg.OMDb.APIKey, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only colorize a real terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseKind maps a --type flag value to a Kind.
func parseKind(s string) (omdb.Kind, error) {
	kind, ok := omdb.KindFromString(s)
	if !ok {
		return omdb.KindMovie, fmt.Errorf("invalid type %q (must be movie, series, episode or game)", s)
	}
	return kind, nil
}
