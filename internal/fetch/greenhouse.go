// Package fetch retrieves job listings from the Greenhouse boards API and
// turns them into structured job records.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobSkillMapper/1.0)"

// DefaultBoardsAPIBaseURL is the public Greenhouse boards API root.
const DefaultBoardsAPIBaseURL = "https://boards-api.greenhouse.io/v1/boards"

// DefaultDetailConcurrency bounds parallel per-job detail requests.
const DefaultDetailConcurrency = 4

// Error represents an error talking to the job board API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the board client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	DetailConcurrency int
}

// DefaultOptions returns sensible defaults for the public boards API.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:           DefaultBoardsAPIBaseURL,
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		DetailConcurrency: DefaultDetailConcurrency,
	}
}

// Client fetches job listings for one Greenhouse board token.
type Client struct {
	boardToken string
	baseURL    string
	userAgent  string
	limit      int
	httpClient *http.Client
}

// NewClient creates a board client. A nil opts uses DefaultOptions.
func NewClient(boardToken string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBoardsAPIBaseURL
	}
	limit := opts.DetailConcurrency
	if limit <= 0 {
		limit = DefaultDetailConcurrency
	}
	return &Client{
		boardToken: boardToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  opts.UserAgent,
		limit:      limit,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// BoardToken returns the board token this client is bound to.
func (c *Client) BoardToken() string {
	return c.boardToken
}

// Wire shapes of the boards API.
type boardJobsResponse struct {
	Jobs []boardJob `json:"jobs"`
}

type boardJob struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	AbsoluteURL   string `json:"absolute_url"`
	UpdatedAt     string `json:"updated_at"`
	InternalJobID int64  `json:"internal_job_id"`
	Location      struct {
		Name string `json:"name"`
	} `json:"location"`
	Departments []struct {
		Name string `json:"name"`
	} `json:"departments"`
	Offices []struct {
		Name string `json:"name"`
	} `json:"offices"`
}

type jobDetailResponse struct {
	Content       string `json:"content"`
	RequisitionID string `json:"requisition_id"`
	Metadata      []struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"metadata"`
}

// notSpecified fills structured fields the board did not provide.
const notSpecified = "Not specified"

// ListJobs fetches the board's full job listing without descriptions.
func (c *Client) ListJobs(ctx context.Context) ([]types.Job, error) {
	url := fmt.Sprintf("%s/%s/jobs", c.baseURL, c.boardToken)

	var listing boardJobsResponse
	if err := c.getJSON(ctx, url, &listing); err != nil {
		return nil, err
	}

	jobs := make([]types.Job, 0, len(listing.Jobs))
	for _, raw := range listing.Jobs {
		jobs = append(jobs, c.parseJob(raw))
	}
	return jobs, nil
}

// JobDetails fetches the full posting for one job and merges the detail
// fields (description, requisition id, salary/employment metadata) into it.
func (c *Client) JobDetails(ctx context.Context, job *types.Job) error {
	url := fmt.Sprintf("%s/%s/jobs/%d", c.baseURL, c.boardToken, job.ID)

	var detail jobDetailResponse
	if err := c.getJSON(ctx, url, &detail); err != nil {
		return err
	}

	job.Description = DecodeContent(detail.Content)
	job.RequisitionID = detail.RequisitionID
	for _, item := range detail.Metadata {
		value, ok := item.Value.(string)
		if !ok {
			continue
		}
		switch item.Name {
		case "Salary Range":
			job.SalaryRange = value
		case "Employment Type":
			job.EmploymentType = value
		}
	}
	return nil
}

// FetchOptions controls a combined list+detail fetch.
type FetchOptions struct {
	// IncludeDetails fetches the full posting for every listed job.
	IncludeDetails bool
	// SearchTerm filters jobs by a case-insensitive title substring.
	SearchTerm string
}

// FetchJobs lists the board and optionally fans out over job details with
// bounded concurrency. A failed detail fetch warns and keeps the
// listing-level job without a description rather than failing the batch.
func (c *Client) FetchJobs(ctx context.Context, opts FetchOptions) ([]types.Job, error) {
	jobs, err := c.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	if opts.SearchTerm != "" {
		term := strings.ToLower(opts.SearchTerm)
		filtered := jobs[:0]
		for _, job := range jobs {
			if strings.Contains(strings.ToLower(job.Title), term) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	if !opts.IncludeDetails {
		return jobs, nil
	}

	var group errgroup.Group
	group.SetLimit(c.limit)
	for i := range jobs {
		job := &jobs[i]
		group.Go(func() error {
			if err := c.JobDetails(ctx, job); err != nil {
				fmt.Fprintf(os.Stderr, "[WARNING] Could not fetch details for job %d (%s): %v\n", job.ID, job.Title, err)
			}
			return nil
		})
	}
	_ = group.Wait()
	return jobs, nil
}

func (c *Client) parseJob(raw boardJob) types.Job {
	job := types.Job{
		ID:             raw.ID,
		Title:          raw.Title,
		Location:       notSpecified,
		Department:     notSpecified,
		Office:         notSpecified,
		ApplicationURL: raw.AbsoluteURL,
		GreenhouseURL:  fmt.Sprintf("https://boards.greenhouse.io/%s/jobs/%d", c.boardToken, raw.ID),
		UpdatedAt:      raw.UpdatedAt,
		InternalJobID:  raw.InternalJobID,
	}
	if raw.Location.Name != "" {
		job.Location = raw.Location.Name
	}
	if len(raw.Departments) > 0 && raw.Departments[0].Name != "" {
		job.Department = raw.Departments[0].Name
	}
	if len(raw.Offices) > 0 && raw.Offices[0].Name != "" {
		job.Office = raw.Offices[0].Name
	}
	return job
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: url, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return &Error{URL: url, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: url, Message: "failed to decode JSON response", Cause: err}
	}
	return nil
}
