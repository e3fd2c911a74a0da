package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-skill-mapper/internal/convert"
	"github.com/jonathan/job-skill-mapper/internal/store"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert fetched jobs to the API record format",
	Long: "Transform a fetched jobs snapshot into API-format records, inferring salary, " +
		"location type, experience level, employment type, and required skills.",
	RunE: runConvert,
}

var (
	convertInput        string
	convertOutput       string
	convertUseSkillTree bool
	convertTreesDir     string
)

func init() {
	convertCmd.Flags().StringVar(&convertInput, "input", "", "Input jobs snapshot file")
	convertCmd.Flags().StringVar(&convertOutput, "output", "jobs_api_format.json", "Output file for API-format records")
	convertCmd.Flags().BoolVar(&convertUseSkillTree, "use-skill-tree", false, "Fall back to persisted skill trees for skills_required")
	convertCmd.Flags().StringVar(&convertTreesDir, "skill-trees-dir", "", "Directory containing persisted skill trees")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := firstNonEmpty(convertInput, cfg.JobsFile)
	treesDir := firstNonEmpty(convertTreesDir, cfg.OutputDir)

	fmt.Fprintf(os.Stderr, "[*] Loading jobs from %s...\n", input)
	file, err := store.LoadJobsFile(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "[*] Found %d jobs to convert\n", len(file.Jobs))

	opts := convert.Options{
		CompanyName: cfg.CompanyName,
		CompanyLogo: cfg.CompanyLogo,
	}
	if convertUseSkillTree {
		trees, err := store.NewFileStore(treesDir)
		if err != nil {
			return err
		}
		opts.Trees = trees
	}

	records := convert.New(opts).ConvertAll(file, func(job types.Job, err error) {
		fmt.Fprintf(os.Stderr, "[WARNING] Failed to convert job %d: %v\n", job.ID, err)
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal converted jobs: %w", err)
	}
	if err := os.WriteFile(convertOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", convertOutput, err)
	}

	fmt.Fprintf(os.Stdout, "[SUCCESS] Converted %d jobs to %s\n", len(records), convertOutput)
	return nil
}
