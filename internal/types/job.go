package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Job is a parsed job posting from the Greenhouse boards API.
type Job struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Location       string `json:"location"`
	Department     string `json:"department"`
	Office         string `json:"office"`
	ApplicationURL string `json:"application_url,omitempty"`
	GreenhouseURL  string `json:"greenhouse_url,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	InternalJobID  int64  `json:"internal_job_id,omitempty"`
	Description    string `json:"description,omitempty"`
	RequisitionID  string `json:"requisition_id,omitempty"`
	SalaryRange    string `json:"salary_range,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
}

// JobsFile is the on-disk envelope written by the fetch-jobs command and
// read by the downstream batch jobs.
type JobsFile struct {
	FetchedAt  string `json:"fetched_at"`
	TotalJobs  int    `json:"total_jobs"`
	BoardToken string `json:"board_token"`
	Jobs       []Job  `json:"jobs"`
}

// APIJob is a job posting converted to the downstream API schema. The
// validate tags are checked after conversion so a bad record is caught
// before it is written out.
type APIJob struct {
	CompanyLogo     string `json:"company_logo" validate:"omitempty,url"`
	CompanyName     string `json:"company_name" validate:"required"`
	Description     string `json:"description"`
	EmploymentType  string `json:"employment_type" validate:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=entry mid senior executive"`
	ExpiresAt       string `json:"expires_at" validate:"required"`
	Location        string `json:"location" validate:"required"`
	LocationType    string `json:"location_type" validate:"required,oneof=remote hybrid onsite"`
	SalaryCurrency  string `json:"salary_currency" validate:"required"`
	SalaryMax       int    `json:"salary_max" validate:"gte=0"`
	SalaryMin       int    `json:"salary_min" validate:"gte=0"`
	SkillsRequired  string `json:"skills_required"`
	Title           string `json:"title" validate:"required"`
}

// Validate validates the APIJob using the validator.
func (j *APIJob) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// RunSummary records the outcome of one generate run across all jobs.
// SkillTrees holds the serialized documents exactly as written to disk.
type RunSummary struct {
	RunID              string            `json:"run_id"`
	TotalJobsProcessed int               `json:"total_jobs_processed"`
	Successful         int               `json:"successful"`
	Failed             int               `json:"failed"`
	SkillTrees         []json.RawMessage `json:"skill_trees"`
}

// TreeDocument pairs a built skill tree with its job metadata, ready for
// serialization as one flat document.
type TreeDocument struct {
	Tree     *Node
	Metadata TreeMetadata
}
