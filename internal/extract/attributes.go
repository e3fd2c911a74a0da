package extract

import (
	"strings"
	"time"
)

// Employment types recognized in posting text.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// Location modes.
const (
	LocationRemote = "remote"
	LocationHybrid = "hybrid"
	LocationOnsite = "onsite"
)

// Experience levels.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// postingTTL is how long a posting is assumed to stay open after its last
// update.
const postingTTL = 90 * 24 * time.Hour

// LocationType infers remote/hybrid/onsite from the location string and the
// description. Remote mentioned together with onsite wording means hybrid.
func LocationType(location, description string) string {
	combined := strings.ToLower(location + " " + description)

	mentionsRemote := strings.Contains(combined, "remote")
	mentionsOnsite := strings.Contains(combined, "hybrid") ||
		strings.Contains(combined, "onsite") ||
		strings.Contains(combined, "in-office") ||
		strings.Contains(combined, "in office")

	switch {
	case mentionsRemote && mentionsOnsite:
		return LocationHybrid
	case mentionsRemote:
		return LocationRemote
	case mentionsOnsite:
		return LocationOnsite
	}

	// Nothing explicit: multiple listed locations suggest hybrid, a single
	// office suggests onsite.
	if strings.ContainsAny(location, ";,") {
		return LocationHybrid
	}
	return LocationOnsite
}

// experienceSignals maps keyword groups to levels, checked in order. Senior
// wording wins over executive so "Senior Director" stays senior; that
// precedence is deliberate and matches how postings title such roles.
var experienceSignals = []struct {
	level    string
	keywords []string
}{
	{LevelSenior, []string{"senior", "sr.", "lead", "principal", "staff", "architect"}},
	{LevelExecutive, []string{"executive", "director", "manager", "head of", "vp", "vice president"}},
	{LevelEntry, []string{"entry", "junior", "jr.", "associate", "intern", "internship"}},
	{LevelMid, []string{"mid-level", "mid level", "3+ years", "2+ years", "5+ years"}},
}

// ExperienceLevel infers seniority from the title and description. Returns
// an empty string when nothing matches.
func ExperienceLevel(description, title string) string {
	combined := strings.ToLower(title + " " + description)
	for _, signal := range experienceSignals {
		for _, keyword := range signal.keywords {
			if strings.Contains(combined, keyword) {
				return signal.level
			}
		}
	}
	return ""
}

// EmploymentType infers the employment type, defaulting to full-time.
func EmploymentType(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "full-time") || strings.Contains(desc, "full time"):
		return EmploymentFullTime
	case strings.Contains(desc, "part-time") || strings.Contains(desc, "part time"):
		return EmploymentPartTime
	case strings.Contains(desc, "contract"):
		return EmploymentContract
	case strings.Contains(desc, "internship"):
		return EmploymentInternship
	default:
		return EmploymentFullTime
	}
}

// ExpiresAt computes a posting expiration 90 days after its last update,
// falling back to 90 days from now when the timestamp is missing or
// unparseable.
func ExpiresAt(updatedAt string, now time.Time) string {
	base := now
	if updatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			base = parsed
		}
	}
	return base.Add(postingTTL).Format(time.RFC3339)
}
