package extract

import (
	"regexp"
	"strings"
)

// techSkillKeywords is the well-known-technology list scanned for in
// descriptions. Matching is case-insensitive on whole text.
var techSkillKeywords = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "TypeScript",
	"SQL", "R", "Swift", "Kotlin", "React", "Vue", "Angular", "Django",
	"Flask", "FastAPI", "Spring", "Node.js", "Express", "TensorFlow", "PyTorch",
	"Git", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Linux", "MongoDB",
	"PostgreSQL", "Redis", "Machine Learning", "AI", "Deep Learning",
	"CUDA", "JAX",
}

// qualificationPatterns capture capitalized skill phrases near requirement
// wording. The lead-in matches case-insensitively; the captured phrase must
// be capitalized, which keeps ordinary prose out.
var qualificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?i:required|must have|qualifications?))[^.]*?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:(?i:experience with|proficiency in|knowledge of))\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// phrase fragments that the qualification patterns tend to capture but are
// not skills
var skillStopwords = map[string]bool{
	"Must":       true,
	"Required":   true,
	"Have":       true,
	"Experience": true,
	"Years":      true,
}

// SkillsFromDescription scans a cleaned description for known technologies
// and capitalized requirement phrases. Results are deduplicated and keep
// discovery order; the caller applies any length cap.
func SkillsFromDescription(description string) []string {
	if description == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	add := func(skill string) {
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		found = append(found, skill)
	}

	descLower := strings.ToLower(description)
	for _, keyword := range techSkillKeywords {
		if strings.Contains(descLower, strings.ToLower(keyword)) {
			add(keyword)
		}
	}

	for _, pattern := range qualificationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(description, -1) {
			skill := strings.TrimSpace(match[1])
			if len(skill) > 2 && !skillStopwords[skill] {
				add(skill)
			}
		}
	}

	return found
}
