// Package convert transforms fetched Greenhouse jobs into the downstream API
// record shape, inferring the structured attributes the board API does not
// provide.
package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/job-skill-mapper/internal/extract"
	"github.com/jonathan/job-skill-mapper/internal/fetch"
	"github.com/jonathan/job-skill-mapper/internal/store"
	"github.com/jonathan/job-skill-mapper/internal/tree"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

// maxSkills caps the skills_required list, whichever source it comes from.
const maxSkills = 20

// Placeholders used when a job record is missing a field entirely.
const (
	placeholderLocation = "Not specified"
	placeholderTitle    = "Unknown Position"
)

// Options configures a Converter.
type Options struct {
	// CompanyName is stamped on every converted record.
	CompanyName string
	// CompanyLogo is an absolute URL to the company logo.
	CompanyLogo string
	// Trees, when set, supplies persisted skill-tree documents as a
	// fallback source of skills_required.
	Trees *store.FileStore
	// Now is the clock used for expiration fallback; defaults to time.Now.
	Now func() time.Time
}

// Converter turns Greenhouse jobs into API-format records.
type Converter struct {
	opts Options
}

// New returns a Converter with the given options.
func New(opts Options) *Converter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Converter{opts: opts}
}

// Convert maps one job to the API record shape and validates the result.
func (c *Converter) Convert(job types.Job) (*types.APIJob, error) {
	description := fetch.CleanDescription(job.Description)

	salary := extract.ParseSalary(description, job.SalaryRange)

	skills := extract.SkillsFromDescription(description)
	if len(skills) == 0 && c.opts.Trees != nil {
		skills = c.skillsFromTree(job.ID)
	}
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	location := job.Location
	if location == "" {
		location = placeholderLocation
	}
	title := job.Title
	if title == "" {
		title = placeholderTitle
	}

	record := &types.APIJob{
		CompanyLogo:     c.opts.CompanyLogo,
		CompanyName:     c.opts.CompanyName,
		Description:     description,
		EmploymentType:  extract.EmploymentType(description),
		ExperienceLevel: extract.ExperienceLevel(description, job.Title),
		ExpiresAt:       extract.ExpiresAt(job.UpdatedAt, c.opts.Now()),
		Location:        location,
		LocationType:    extract.LocationType(job.Location, description),
		SalaryCurrency:  salary.Currency,
		SalaryMax:       salary.Max,
		SalaryMin:       salary.Min,
		SkillsRequired:  strings.Join(skills, ", "),
		Title:           title,
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("job %d failed validation: %w", job.ID, err)
	}
	return record, nil
}

// ConvertAll maps a whole jobs envelope. Jobs that fail to convert are
// reported through onError and skipped; the rest are returned in order.
func (c *Converter) ConvertAll(file *types.JobsFile, onError func(job types.Job, err error)) []*types.APIJob {
	records := make([]*types.APIJob, 0, len(file.Jobs))
	for _, job := range file.Jobs {
		record, err := c.Convert(job)
		if err != nil {
			if onError != nil {
				onError(job, err)
			}
			continue
		}
		records = append(records, record)
	}
	return records
}

// skillsFromTree reads the persisted skill tree for a job and collects its
// skill leaves. Any problem just means no fallback skills.
func (c *Converter) skillsFromTree(jobID int64) []string {
	if jobID == 0 {
		return nil
	}
	path, ok := c.opts.Trees.FindTreeFile(jobID)
	if !ok {
		return nil
	}
	root, _, err := store.LoadDocument(path)
	if err != nil {
		return nil
	}
	skills, err := tree.CollectSkills(root)
	if err != nil {
		return nil
	}
	return skills
}
