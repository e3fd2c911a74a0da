package classify

import (
	"strings"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// fallbackKeywords is the keyword table used when the classifier is
// unavailable or returns garbage. Ordered: category order here is the
// category order in the resulting record.
var fallbackKeywords = []types.TechnicalCategory{
	{Name: "programming_languages", Skills: []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "TypeScript",
		"SQL", "R", "Swift", "Kotlin",
	}},
	{Name: "frameworks", Skills: []string{
		"React", "Vue", "Angular", "Django", "Flask", "FastAPI", "Spring",
		"Node.js", "Express", "TensorFlow", "PyTorch",
	}},
	{Name: "tools", Skills: []string{
		"Git", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Jenkins",
		"CI/CD", "Linux", "MongoDB", "PostgreSQL", "Redis",
	}},
}

// Fallback extracts skills by keyword matching against the posting text.
// Used when no API key is configured or the classifier output is unusable;
// its result is always a well-formed (possibly empty) record.
func Fallback(jobTitle, cleanedDescription string) *types.ClassifierResult {
	haystack := strings.ToLower(jobTitle + " " + cleanedDescription)

	var technical types.TechnicalSkills
	for _, category := range fallbackKeywords {
		found := []string{}
		for _, keyword := range category.Skills {
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				found = append(found, keyword)
			}
		}
		technical.Set(category.Name, found)
	}

	return &types.ClassifierResult{
		Skills: types.SkillRecord{
			Technical:              technical,
			SoftSkills:             []string{},
			Domains:                []string{},
			Certifications:         []string{},
			Education:              []string{},
			ExperienceRequirements: []string{},
		},
		RequiredVsPreferred: &types.RequiredVsPreferred{
			Required:  []string{},
			Preferred: []string{},
		},
	}
}
