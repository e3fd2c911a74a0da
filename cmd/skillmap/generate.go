package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-skill-mapper/internal/classify"
	"github.com/jonathan/job-skill-mapper/internal/fetch"
	"github.com/jonathan/job-skill-mapper/internal/llm"
	"github.com/jonathan/job-skill-mapper/internal/observability"
	"github.com/jonathan/job-skill-mapper/internal/render"
	"github.com/jonathan/job-skill-mapper/internal/schemas"
	"github.com/jonathan/job-skill-mapper/internal/store"
	"github.com/jonathan/job-skill-mapper/internal/tree"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

// summaryFileName is written into the output directory after every run.
const summaryFileName = "job_skill_trees_summary.json"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate skill trees for fetched jobs",
	Long: "Classify each fetched job's description into a skill taxonomy, build its skill tree, " +
		"and write a JSON document plus an interactive HTML visualization per job.",
	RunE: runGenerate,
}

var (
	generateJobsFile  string
	generateOutputDir string
	generateLimit     int
	generateAPIKey    string
	generateDBURL     string
)

func init() {
	generateCmd.Flags().StringVar(&generateJobsFile, "jobs-file", "", "Path to the fetched jobs snapshot")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Directory for skill tree artifacts")
	generateCmd.Flags().IntVar(&generateLimit, "limit", 0, "Process at most this many jobs (0 = all)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (falls back to GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&generateDBURL, "db-url", "", "PostgreSQL URL to mirror results into")

	rootCmd.AddCommand(generateCmd)
}

// generator holds everything one generate run needs.
type generator struct {
	classifier *classify.Classifier
	trees      *store.FileStore
	db         *store.DB
	runID      uuid.UUID
	schemaPath string
	useBrowser bool
	verbose    bool
	printer    *observability.Printer
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	jobsFile := firstNonEmpty(generateJobsFile, cfg.JobsFile)
	outputDir := firstNonEmpty(generateOutputDir, cfg.OutputDir)
	limit := generateLimit
	if limit == 0 {
		limit = cfg.MaxJobs
	}

	file, err := store.LoadJobsFile(jobsFile)
	if err != nil {
		return fmt.Errorf("failed to load jobs (run fetch-jobs --details first): %w", err)
	}

	jobs := file.Jobs
	if limit > 0 && len(jobs) > limit {
		fmt.Fprintf(os.Stderr, "[*] Processing %d of %d jobs (limit: %d)\n", limit, len(jobs), limit)
		jobs = jobs[:limit]
	} else {
		fmt.Fprintf(os.Stderr, "[*] Processing all %d jobs\n", len(jobs))
	}

	trees, err := store.NewFileStore(outputDir)
	if err != nil {
		return err
	}

	g := &generator{
		trees:      trees,
		runID:      uuid.New(),
		schemaPath: schemas.ResolveSchemaPath(schemas.SkillTreeSchema),
		useBrowser: cfg.UseBrowser,
		verbose:    cfg.Verbose,
		printer:    observability.NewPrinter(os.Stdout),
	}

	apiKey := firstNonEmpty(generateAPIKey, cfg.APIKey, os.Getenv("GEMINI_API_KEY"))
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create classifier client: %w", err)
		}
		defer client.Close()
		g.classifier = classify.New(client)
	} else {
		fmt.Fprintln(os.Stderr, "[*] No API key found, using fallback extraction")
	}

	if dbURL := firstNonEmpty(generateDBURL, cfg.DatabaseURL); dbURL != "" {
		db, err := store.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
		g.db = db
	}

	summary := &types.RunSummary{RunID: g.runID.String()}
	for _, job := range jobs {
		summary.TotalJobsProcessed++
		document, err := g.processJob(ctx, job)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[WARNING] Failed to process job %d: %v\n", job.ID, err)
			summary.Failed++
			continue
		}
		summary.SkillTrees = append(summary.SkillTrees, document)
		summary.Successful++
	}

	if err := writeSummary(trees.Dir(), summary); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "[SUCCESS] Processed %d jobs successfully, %d failed\n",
		summary.Successful, summary.Failed)
	if g.verbose {
		g.printer.PrintRunSummary(summary)
	}
	return nil
}

// processJob classifies one job, builds its tree, and writes the JSON
// document and HTML visualization. Returns the serialized document.
func (g *generator) processJob(ctx context.Context, job types.Job) (json.RawMessage, error) {
	title := job.Title
	if title == "" {
		title = "Unknown Position"
	}
	fmt.Fprintf(os.Stderr, "[*] Analyzing job: %s (ID: %d)\n", title, job.ID)

	if job.Description == "" {
		return nil, fmt.Errorf("no description")
	}

	cleaned := fetch.CleanDescription(job.Description)
	if g.useBrowser && fetch.ShouldUseBrowser(cleaned) && job.ApplicationURL != "" {
		if page, err := fetch.DescriptionFromPage(ctx, job.ApplicationURL, g.verbose); err == nil && page != "" {
			cleaned = page
		}
	}

	result := g.classify(ctx, title, cleaned)

	root := tree.Build(&result.Skills)
	location := job.Location
	if location == "" {
		location = "Not specified"
	}
	meta := types.TreeMetadata{
		JobID:          job.ID,
		JobTitle:       title,
		Location:       location,
		ApplicationURL: job.ApplicationURL,
	}

	path, err := g.trees.SaveDocument(root, meta)
	if err != nil {
		return nil, err
	}
	if g.schemaPath != "" {
		if err := schemas.ValidateJSON(g.schemaPath, path); err != nil {
			fmt.Fprintf(os.Stderr, "[WARNING] Document for job %d failed schema validation: %v\n", job.ID, err)
		}
	}

	page, err := render.HTML(root, "Required Skills: "+title)
	if err != nil {
		return nil, err
	}
	if _, err := g.trees.SaveHTML(meta.JobID, meta.JobTitle, []byte(page)); err != nil {
		return nil, err
	}

	document, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if g.db != nil {
		if err := g.db.UpsertJob(ctx, job); err != nil {
			return nil, err
		}
		if err := g.db.SaveSkillTree(ctx, job.ID, g.runID, document); err != nil {
			return nil, err
		}
	}

	if g.verbose {
		count, _ := tree.CountNodes(root)
		skills, _ := tree.CollectSkills(root)
		g.printer.PrintTree(meta, count, skills)
	}
	return document, nil
}

// classify runs the LLM classifier when one is configured and falls back to
// keyword extraction when it is absent or fails.
func (g *generator) classify(ctx context.Context, title, cleaned string) *types.ClassifierResult {
	if g.classifier == nil {
		return classify.Fallback(title, cleaned)
	}
	result, err := g.classifier.Classify(ctx, title, cleaned)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARNING] Classifier failed for %q, using fallback extraction: %v\n", title, err)
		return classify.Fallback(title, cleaned)
	}
	return result
}

func writeSummary(dir string, summary *types.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	path := filepath.Join(dir, summaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run summary %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "[*] Summary saved to %s\n", path)
	return nil
}
