package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-skill-mapper/internal/store"
)

var backfillURLsCmd = &cobra.Command{
	Use:   "backfill-urls [skill_trees_dir] [jobs_file]",
	Short: "Add application URLs to existing skill tree documents",
	Long: "Match persisted skill tree documents against a fetched jobs snapshot and fill in " +
		"each document's application URL (plus title and location when missing) without " +
		"re-classifying anything.",
	Args: cobra.MaximumNArgs(2),
	RunE: runBackfillURLs,
}

func init() {
	rootCmd.AddCommand(backfillURLsCmd)
}

func runBackfillURLs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	treesDir := cfg.OutputDir
	jobsFile := cfg.JobsFile
	if len(args) > 0 {
		treesDir = args[0]
	}
	if len(args) > 1 {
		jobsFile = args[1]
	}

	file, err := store.LoadJobsFile(jobsFile)
	if err != nil {
		return err
	}
	jobs := store.JobsByID(file)
	fmt.Fprintf(os.Stderr, "[*] Loaded %d jobs from %s\n", len(jobs), jobsFile)

	trees, err := store.NewFileStore(treesDir)
	if err != nil {
		return err
	}
	results, err := trees.BackfillURLs(jobs)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "[*] Found %d skill tree documents in %s\n", len(results), treesDir)

	var updated, skipped, failed int
	for _, result := range results {
		switch result.Outcome {
		case store.BackfillUpdated:
			updated++
			fmt.Fprintf(os.Stdout, "  [OK] Updated job %d\n", result.JobID)
		case store.BackfillSkipped:
			skipped++
			fmt.Fprintf(os.Stdout, "  [SKIP] Job %d already has application_url\n", result.JobID)
		case store.BackfillMissingJob:
			failed++
			fmt.Fprintf(os.Stderr, "  [WARNING] No job found for %s\n", result.Path)
		case store.BackfillFailed:
			failed++
			fmt.Fprintf(os.Stderr, "  [ERROR] %s: %v\n", result.Path, result.Err)
		}
	}

	fmt.Fprintf(os.Stdout, "[*] Summary: %d updated, %d skipped, %d failed\n", updated, skipped, failed)
	return nil
}
