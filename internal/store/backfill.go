package store

import (
	"os"
	"path/filepath"

	"github.com/jonathan/job-skill-mapper/internal/tree"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

// BackfillOutcome classifies what happened to one document during a URL
// backfill pass.
type BackfillOutcome string

const (
	// BackfillUpdated means the document gained an application URL.
	BackfillUpdated BackfillOutcome = "updated"
	// BackfillSkipped means the document already carried a URL.
	BackfillSkipped BackfillOutcome = "skipped"
	// BackfillMissingJob means no job in the snapshot matched the document.
	BackfillMissingJob BackfillOutcome = "missing-job"
	// BackfillFailed means the document could not be read or parsed.
	BackfillFailed BackfillOutcome = "failed"
)

// BackfillFileResult reports the outcome for one tree file.
type BackfillFileResult struct {
	Path    string
	JobID   int64
	Outcome BackfillOutcome
	Err     error
}

// BackfillURLs walks every persisted tree document and fills in the
// application URL (plus title and location when absent) from the jobs
// snapshot. Documents that already have a URL are left untouched; malformed
// documents are reported and the pass continues.
func (s *FileStore) BackfillURLs(jobs map[int64]types.Job) ([]BackfillFileResult, error) {
	paths, err := s.ScanTreeFiles()
	if err != nil {
		return nil, err
	}

	results := make([]BackfillFileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, s.backfillOne(path, jobs))
	}
	return results, nil
}

func (s *FileStore) backfillOne(path string, jobs map[int64]types.Job) BackfillFileResult {
	result := BackfillFileResult{Path: path}

	root, meta, err := LoadDocument(path)
	if err != nil {
		result.Outcome = BackfillFailed
		result.Err = err
		return result
	}

	result.JobID = meta.JobID
	if result.JobID == 0 {
		if id, ok := JobIDFromFilename(filepath.Base(path)); ok {
			result.JobID = id
			meta.JobID = id
		}
	}
	if result.JobID == 0 {
		result.Outcome = BackfillMissingJob
		return result
	}

	if meta.ApplicationURL != "" {
		result.Outcome = BackfillSkipped
		return result
	}

	job, ok := jobs[result.JobID]
	if !ok {
		result.Outcome = BackfillMissingJob
		return result
	}

	meta.ApplicationURL = job.ApplicationURL
	if meta.ApplicationURL == "" {
		meta.ApplicationURL = job.GreenhouseURL
	}
	if meta.JobTitle == "" {
		meta.JobTitle = job.Title
	}
	if meta.Location == "" {
		meta.Location = job.Location
	}

	data, err := tree.Serialize(root, meta)
	if err != nil {
		result.Outcome = BackfillFailed
		result.Err = err
		return result
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		result.Outcome = BackfillFailed
		result.Err = err
		return result
	}

	result.Outcome = BackfillUpdated
	return result
}
