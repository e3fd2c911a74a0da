package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// SaveJobsFile writes a fetched-jobs envelope as pretty-printed JSON.
func SaveJobsFile(path string, file *types.JobsFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal jobs file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write jobs file %s: %w", path, err)
	}
	return nil
}

// LoadJobsFile reads a fetched-jobs envelope from disk.
func LoadJobsFile(path string) (*types.JobsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	var file types.JobsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
	}
	return &file, nil
}

// JobsByID indexes the envelope's jobs by id for backfill lookups.
func JobsByID(file *types.JobsFile) map[int64]types.Job {
	index := make(map[int64]types.Job, len(file.Jobs))
	for _, job := range file.Jobs {
		if job.ID != 0 {
			index[job.ID] = job
		}
	}
	return index
}
