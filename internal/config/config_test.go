package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"board_token": "acme",
		"jobs_file": "acme_jobs.json",
		"company_name": "Acme",
		"use_browser": true,
		"max_jobs": 10
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.BoardToken)
	assert.Equal(t, "acme_jobs.json", cfg.JobsFile)
	assert.Equal(t, "Acme", cfg.CompanyName)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 10, cfg.MaxJobs)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{MaxJobs: 5}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{MaxJobs: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{BoardToken: "acme", Verbose: true}
	merged := cfg.MergeWithDefaults(Default())

	// Explicit values survive the merge.
	assert.Equal(t, "acme", merged.BoardToken)
	assert.True(t, merged.Verbose)

	// Empty fields pick up the defaults.
	assert.Equal(t, DefaultJobsFile, merged.JobsFile)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.Equal(t, DefaultCompany, merged.CompanyName)
	assert.Equal(t, DefaultLogo, merged.CompanyLogo)
	assert.False(t, merged.UseBrowser)
}
