// Package classify extracts a categorized skill record from a job posting,
// either through an LLM or a keyword fallback.
package classify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/job-skill-mapper/internal/llm"
	"github.com/jonathan/job-skill-mapper/internal/types"
)

// Classifier turns job postings into skill records via an LLM client.
type Classifier struct {
	client llm.Client
}

// New creates a classifier backed by the given LLM client.
func New(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify analyzes a posting and returns its categorized skills. The
// description must already be cleaned to plain text. On an API failure it
// returns an APICallError; on uninterpretable model output a ParseError.
// Callers are expected to fall back to Fallback on either.
func (c *Classifier) Classify(ctx context.Context, jobTitle, cleanedDescription string) (*types.ClassifierResult, error) {
	prompt := buildPrompt(jobTitle, cleanedDescription)

	response, err := c.client.GenerateJSON(ctx, prompt, llm.ClassifierTier)
	if err != nil {
		return nil, &APICallError{Message: "skill extraction request failed", Cause: err}
	}

	return parseResponse(response)
}

// parseResponse interprets the model output as a classifier result. The
// output may still carry a markdown fence or stray prose around the JSON
// object despite the prompt; CleanJSONBlock isolates the object itself.
func parseResponse(response string) (*types.ClassifierResult, error) {
	cleaned := llm.CleanJSONBlock(response)
	if !strings.HasPrefix(cleaned, "{") {
		return nil, &ParseError{Message: "no JSON object in classifier response"}
	}

	var result types.ClassifierResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &ParseError{Message: "invalid classifier JSON", Cause: err}
	}
	return &result, nil
}
