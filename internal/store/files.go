// Package store persists skill-tree documents and job snapshots, to the
// filesystem by default and optionally to PostgreSQL.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/job-skill-mapper/internal/tree"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

const treeFileSuffix = "_skill_tree"

var (
	unsafeTitleRE = regexp.MustCompile(`[^a-zA-Z0-9_\s-]`)
	separatorRE   = regexp.MustCompile(`[-\s]+`)
	jobIDRE       = regexp.MustCompile(`job_(\d+)_`)
)

// SanitizeTitle turns a job title into a filename-safe fragment: unsafe
// characters dropped, runs of spaces and hyphens collapsed to a single
// underscore.
func SanitizeTitle(title string) string {
	safe := unsafeTitleRE.ReplaceAllString(title, "")
	safe = strings.TrimSpace(safe)
	return separatorRE.ReplaceAllString(safe, "_")
}

// TreeFileName returns the JSON document filename for a job, e.g.
// "job_4922802007_AI_Tutor_skill_tree.json".
func TreeFileName(jobID int64, title string) string {
	return fmt.Sprintf("job_%d_%s%s.json", jobID, SanitizeTitle(title), treeFileSuffix)
}

// HTMLFileName returns the visualization filename for a job.
func HTMLFileName(jobID int64, title string) string {
	return fmt.Sprintf("job_%d_%s%s.html", jobID, SanitizeTitle(title), treeFileSuffix)
}

// JobIDFromFilename recovers the job id from a tree filename. Returns false
// when the name does not follow the job_<id>_ scheme.
func JobIDFromFilename(name string) (int64, bool) {
	match := jobIDRE.FindStringSubmatch(filepath.Base(name))
	if match == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FileStore reads and writes skill-tree artifacts under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the output directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

// SaveDocument serializes the tree with its metadata and writes it under the
// job_<id>_<title>_skill_tree.json scheme. Returns the written path.
func (s *FileStore) SaveDocument(root *types.Node, meta types.TreeMetadata) (string, error) {
	data, err := tree.Serialize(root, meta)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, TreeFileName(meta.JobID, meta.JobTitle))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write skill tree %s: %w", path, err)
	}
	return path, nil
}

// SaveHTML writes the rendered visualization next to the JSON document.
func (s *FileStore) SaveHTML(jobID int64, title string, page []byte) (string, error) {
	path := filepath.Join(s.dir, HTMLFileName(jobID, title))
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("failed to write visualization %s: %w", path, err)
	}
	return path, nil
}

// LoadDocument reads and deserializes a persisted tree document.
func LoadDocument(path string) (*types.Node, types.TreeMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.TreeMetadata{}, fmt.Errorf("failed to read skill tree %s: %w", path, err)
	}
	root, meta, err := tree.Deserialize(data)
	if err != nil {
		return nil, types.TreeMetadata{}, fmt.Errorf("%s: %w", path, err)
	}
	return root, meta, nil
}

// ScanTreeFiles lists every *_skill_tree.json under the store directory,
// sorted by name.
func (s *FileStore) ScanTreeFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), treeFileSuffix+".json") {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// FindTreeFile locates the persisted document for a job id, whatever title
// the filename carries.
func (s *FileStore) FindTreeFile(jobID int64) (string, bool) {
	pattern := filepath.Join(s.dir, fmt.Sprintf("job_%d_*%s.json", jobID, treeFileSuffix))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}
