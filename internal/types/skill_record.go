// Package types provides type definitions for structured data used throughout the job-skill-mapper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ClassifierResult is the envelope returned by the skill classifier.
// The required_vs_preferred breakdown is carried through for reporting but
// is not part of the tree.
type ClassifierResult struct {
	Skills              SkillRecord          `json:"skills"`
	RequiredVsPreferred *RequiredVsPreferred `json:"required_vs_preferred,omitempty"`
}

// RequiredVsPreferred splits extracted skills by requirement strength.
type RequiredVsPreferred struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// SkillRecord is the flat, categorized skill description of a single job
// posting. Every field is optional; an absent field and an empty one mean
// the same thing.
type SkillRecord struct {
	Technical              TechnicalSkills `json:"technical,omitempty"`
	SoftSkills             []string        `json:"soft_skills,omitempty"`
	Domains                []string        `json:"domains,omitempty"`
	Certifications         []string        `json:"certifications,omitempty"`
	Education              []string        `json:"education,omitempty"`
	ExperienceRequirements []string        `json:"experience_requirements,omitempty"`
}

// TechnicalSkills maps a category name (e.g. "programming_languages") to its
// skill list while preserving the key order of the source JSON object. The
// classifier's category set is open-ended, and category order determines
// sibling order in the built tree, so a plain map is not enough.
type TechnicalSkills struct {
	keys   []string
	values map[string][]string
}

// NewTechnicalSkills builds a TechnicalSkills from ordered (category, skills) pairs.
func NewTechnicalSkills(pairs ...TechnicalCategory) TechnicalSkills {
	ts := TechnicalSkills{values: make(map[string][]string, len(pairs))}
	for _, p := range pairs {
		ts.Set(p.Name, p.Skills)
	}
	return ts
}

// TechnicalCategory is a single named category with its skills in source order.
type TechnicalCategory struct {
	Name   string
	Skills []string
}

// Set adds or replaces a category. A newly seen key is appended to the
// iteration order; replacing an existing key keeps its original position.
func (t *TechnicalSkills) Set(name string, skills []string) {
	if t.values == nil {
		t.values = make(map[string][]string)
	}
	if _, exists := t.values[name]; !exists {
		t.keys = append(t.keys, name)
	}
	t.values[name] = skills
}

// Get returns the skills for a category and whether the category exists.
func (t TechnicalSkills) Get(name string) ([]string, bool) {
	skills, ok := t.values[name]
	return skills, ok
}

// Keys returns the category names in source order.
func (t TechnicalSkills) Keys() []string {
	return t.keys
}

// Len returns the number of categories.
func (t TechnicalSkills) Len() int {
	return len(t.keys)
}

// IsZero reports whether no categories are present.
func (t TechnicalSkills) IsZero() bool {
	return len(t.keys) == 0
}

// MarshalJSON writes the categories as a JSON object in source order.
func (t TechnicalSkills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(t.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording keys in the order they appear.
// JSON null is treated as empty.
func (t *TechnicalSkills) UnmarshalJSON(data []byte) error {
	*t = TechnicalSkills{values: make(map[string][]string)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("technical skills: %w", err)
	}
	if tok == nil {
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("technical skills: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("technical skills: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("technical skills: expected object key, got %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("technical skills: category %q: %w", key, err)
		}
		t.Set(key, skills)
	}

	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("technical skills: %w", err)
	}

	return nil
}

// IsEmpty reports whether the record carries no skills at all.
func (r *SkillRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Technical.IsZero() &&
		len(r.SoftSkills) == 0 &&
		len(r.Domains) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Education) == 0 &&
		len(r.ExperienceRequirements) == 0
}
