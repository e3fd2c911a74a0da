package classify

import "fmt"

const systemPreamble = "You are an expert job posting analyzer. Extract required skills and qualifications. Always return valid JSON only."

const promptTemplate = `Analyze the following job posting and extract all required skills, qualifications, and experience needed for a candidate to match this position.

Job Title: %s

Job Description:
%s

Please identify:
1. Required technical skills (programming languages, frameworks, tools, technologies)
2. Required soft skills (communication, leadership, etc.)
3. Domain expertise required (AI/ML, web development, etc.)
4. Required certifications and qualifications
5. Education requirements (degrees, fields of study)
6. Experience requirements (years, specific roles, industries)
7. Preferred qualifications (nice-to-have skills)

Return a JSON structure with this format:
{
    "skills": {
        "technical": {
            "programming_languages": ["skill1", "skill2"],
            "frameworks": ["skill1", "skill2"],
            "tools": ["skill1", "skill2"],
            "databases": ["skill1", "skill2"],
            "cloud_platforms": ["skill1", "skill2"],
            "technologies": ["tech1", "tech2"]
        },
        "soft_skills": ["skill1", "skill2"],
        "domains": ["domain1", "domain2"],
        "certifications": ["cert1", "cert2"],
        "education": ["requirement1", "requirement2"],
        "experience_requirements": ["requirement1", "requirement2"]
    },
    "required_vs_preferred": {
        "required": ["skill1", "skill2"],
        "preferred": ["skill1", "skill2"]
    }
}

Only return valid JSON, no additional text.`

// buildPrompt assembles the classification prompt for one posting.
func buildPrompt(jobTitle, cleanedDescription string) string {
	return systemPreamble + "\n\n" + fmt.Sprintf(promptTemplate, jobTitle, cleanedDescription)
}
