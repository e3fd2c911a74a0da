package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-skill-mapper/internal/store"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

func TestConvertCommand(t *testing.T) {
	jobsPath := writeJobsFile(t, []types.Job{
		{
			ID:          200,
			Title:       "Senior ML Engineer",
			Location:    "Palo Alto, CA",
			UpdatedAt:   "2025-01-01T00:00:00Z",
			SalaryRange: "$180,000 - $440,000 USD",
			Description: "<p>Train models in Python with PyTorch. Full-time, in-office.</p>",
		},
	})
	outPath := filepath.Join(t.TempDir(), "api.json")

	rootCmd.SetArgs([]string{"convert", "--input", jobsPath, "--output", outPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var records []types.APIJob
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "xAI", record.CompanyName)
	assert.Equal(t, "Senior ML Engineer", record.Title)
	assert.Equal(t, "senior", record.ExperienceLevel)
	assert.Equal(t, "full-time", record.EmploymentType)
	assert.Equal(t, 180000, record.SalaryMin)
	assert.Equal(t, 440000, record.SalaryMax)
	assert.Contains(t, record.SkillsRequired, "Python")
	assert.Contains(t, record.SkillsRequired, "PyTorch")
}

func TestConvertCommand_SkillTreeFallback(t *testing.T) {
	treesDir := filepath.Join(t.TempDir(), "trees")
	trees, err := store.NewFileStore(treesDir)
	require.NoError(t, err)

	root := &types.Node{
		Name: "Skills",
		Kind: types.KindCategory,
		Children: []*types.Node{
			{Name: "Photonics", Kind: types.KindSkill},
		},
	}
	_, err = trees.SaveDocument(root, types.TreeMetadata{JobID: 300, JobTitle: "Physicist"})
	require.NoError(t, err)

	jobsPath := writeJobsFile(t, []types.Job{
		{ID: 300, Title: "Physicist", Description: "We seek people to define methods of assessment."},
	})
	outPath := filepath.Join(t.TempDir(), "api.json")

	rootCmd.SetArgs([]string{"convert",
		"--input", jobsPath,
		"--output", outPath,
		"--use-skill-tree",
		"--skill-trees-dir", treesDir})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var records []types.APIJob
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Photonics", records[0].SkillsRequired)
}
