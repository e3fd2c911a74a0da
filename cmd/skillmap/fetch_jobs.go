package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-skill-mapper/internal/fetch"
	"github.com/jonathan/job-skill-mapper/internal/observability"
	"github.com/jonathan/job-skill-mapper/internal/store"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

var fetchJobsCmd = &cobra.Command{
	Use:   "fetch-jobs",
	Short: "Fetch job postings from a Greenhouse board",
	Long: "Fetch the job listing from a Greenhouse board, optionally enrich each job with its " +
		"full description, and save the snapshot as a JSON file.",
	RunE: runFetchJobs,
}

var (
	fetchBoard   string
	fetchDetails bool
	fetchSearch  string
	fetchOut     string
)

func init() {
	fetchJobsCmd.Flags().StringVar(&fetchBoard, "board", "", "Greenhouse board token")
	fetchJobsCmd.Flags().BoolVarP(&fetchDetails, "details", "d", false, "Fetch full description for each job")
	fetchJobsCmd.Flags().StringVarP(&fetchSearch, "search", "s", "", "Only keep jobs whose title contains this term")
	fetchJobsCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Output file for the jobs snapshot")

	rootCmd.AddCommand(fetchJobsCmd)
}

func runFetchJobs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	board := firstNonEmpty(fetchBoard, cfg.BoardToken)
	out := firstNonEmpty(fetchOut, cfg.JobsFile)

	fmt.Fprintf(os.Stderr, "[*] Fetching jobs from board %s...\n", board)

	client := fetch.NewClient(board, fetch.DefaultOptions())
	jobs, err := client.FetchJobs(cmd.Context(), fetch.FetchOptions{
		IncludeDetails: fetchDetails,
		SearchTerm:     fetchSearch,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}

	file := &types.JobsFile{
		FetchedAt:  time.Now().Format(time.RFC3339),
		TotalJobs:  len(jobs),
		BoardToken: board,
		Jobs:       jobs,
	}
	if err := store.SaveJobsFile(out, file); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "[*] Saved %d jobs to %s\n", len(jobs), out)
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobs(file)
	}
	return nil
}
