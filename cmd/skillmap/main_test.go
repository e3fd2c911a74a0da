package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-skill-mapper/internal/config"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"fetch-jobs", "generate", "convert", "backfill-urls"} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	configPath = ""
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBoardToken, cfg.BoardToken)
	assert.Equal(t, config.DefaultJobsFile, cfg.JobsFile)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, config.DefaultCompany, cfg.CompanyName)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"board_token": "acme", "verbose": true}`), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.BoardToken)
	assert.True(t, cfg.Verbose)
	// Unset fields still pick up defaults.
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestLoadConfig_BadFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { configPath = "" }()

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestFetchJobsFlags(t *testing.T) {
	assert.NotNil(t, fetchJobsCmd.Flags().Lookup("board"))
	assert.NotNil(t, fetchJobsCmd.Flags().Lookup("details"))
	assert.NotNil(t, fetchJobsCmd.Flags().Lookup("search"))
	assert.NotNil(t, fetchJobsCmd.Flags().Lookup("out"))
	assert.Equal(t, "d", fetchJobsCmd.Flags().Lookup("details").Shorthand)
	assert.Equal(t, "s", fetchJobsCmd.Flags().Lookup("search").Shorthand)
}
