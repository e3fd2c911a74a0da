// Package main provides the entry point for the job skill mapper CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-skill-mapper/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "Job posting skill taxonomy pipeline",
	Long: "Skillmap fetches job postings from a Greenhouse board, classifies each posting's " +
		"requirements into a skill taxonomy, and renders interactive skill tree visualizations.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress information")
}

// loadConfig merges the optional config file with built-in defaults. Flag
// values override the result in each command.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg.MergeWithDefaults(config.Default()), nil
}

// firstNonEmpty returns the first non-empty string, used to let flags
// override config values.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
