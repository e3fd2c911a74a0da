// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor CLI flags provide a
// value.
const (
	DefaultBoardToken = "xai"
	DefaultJobsFile   = "xai_jobs.json"
	DefaultOutputDir  = "job_skill_trees"
	DefaultCompany    = "xAI"
	DefaultLogo       = "https://x.ai/favicon.ico"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	// Board
	BoardToken string `json:"board_token,omitempty"` // Greenhouse board token
	JobsFile   string `json:"jobs_file,omitempty"`   // Path of the fetched-jobs snapshot
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for skill tree artifacts

	// Company identity stamped on converted records
	CompanyName string `json:"company_name,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for empty API content
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	MaxJobs     int    `json:"max_jobs,omitempty"`     // Cap on jobs processed per run, 0 = all
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.MaxJobs < 0 {
		return fmt.Errorf("config error: 'max_jobs' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BoardToken == "" {
		result.BoardToken = defaults.BoardToken
	}
	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.CompanyName == "" {
		result.CompanyName = defaults.CompanyName
	}
	if result.CompanyLogo == "" {
		result.CompanyLogo = defaults.CompanyLogo
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxJobs == 0 {
		result.MaxJobs = defaults.MaxJobs
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// Default returns the built-in configuration used when no config file is
// given.
func Default() Config {
	return Config{
		BoardToken:  DefaultBoardToken,
		JobsFile:    DefaultJobsFile,
		OutputDir:   DefaultOutputDir,
		CompanyName: DefaultCompany,
		CompanyLogo: DefaultLogo,
	}
}
