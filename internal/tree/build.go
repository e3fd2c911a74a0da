// Package tree builds, serializes, and traverses the canonical skill tree
// derived from a classified job posting.
package tree

import (
	"strings"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// RootName is the display name of every skill tree root.
const RootName = "Skills"

// Fixed display names of the depth-1 branches. Their order here is the
// sibling order in the built tree and is relied on by the renderer's
// default layout.
const (
	BranchTechnical      = "Technical Skills"
	BranchSoftSkills     = "Soft Skills"
	BranchDomains        = "Domain Expertise"
	BranchCertifications = "Certifications"
	BranchEducation      = "Education & Qualifications"
	BranchExperience     = "Experience Requirements"
)

// Build constructs a skill tree from a categorized skill record. It is a
// total function: a nil or empty record yields a root with no children, and
// empty buckets are suppressed rather than rendered as empty branches.
func Build(record *types.SkillRecord) *types.Node {
	root := &types.Node{
		Name:     RootName,
		Kind:     types.KindCategory,
		Children: []*types.Node{},
	}
	if record == nil {
		return root
	}

	if tech := buildTechnicalBranch(record.Technical); tech != nil {
		root.Children = append(root.Children, tech)
	}

	// The remaining buckets are flat: one category node with one leaf per
	// entry, in source order.
	flat := []struct {
		name    string
		kind    types.NodeKind
		entries []string
	}{
		{BranchSoftSkills, types.KindSkill, record.SoftSkills},
		{BranchDomains, types.KindSkill, record.Domains},
		{BranchCertifications, types.KindCertification, record.Certifications},
		{BranchEducation, types.KindQualification, record.Education},
		{BranchExperience, types.KindRequirement, record.ExperienceRequirements},
	}
	for _, bucket := range flat {
		if len(bucket.entries) == 0 {
			continue
		}
		root.Children = append(root.Children, &types.Node{
			Name:     bucket.name,
			Kind:     types.KindCategory,
			Children: leafNodes(bucket.entries, bucket.kind),
		})
	}

	return root
}

// buildTechnicalBranch builds the Technical Skills branch, one subcategory
// per non-empty category key in source order. Returns nil when no category
// contributes a child.
func buildTechnicalBranch(tech types.TechnicalSkills) *types.Node {
	if tech.IsZero() {
		return nil
	}

	branch := &types.Node{
		Name:     BranchTechnical,
		Kind:     types.KindCategory,
		Children: []*types.Node{},
	}
	for _, key := range tech.Keys() {
		skills, _ := tech.Get(key)
		if len(skills) == 0 {
			continue
		}
		branch.Children = append(branch.Children, &types.Node{
			Name:     CategoryDisplayName(key),
			Kind:     types.KindCategory,
			Children: leafNodes(skills, types.KindSkill),
		})
	}

	if len(branch.Children) == 0 {
		return nil
	}
	return branch
}

// leafNodes builds one leaf per entry, preserving order.
func leafNodes(entries []string, kind types.NodeKind) []*types.Node {
	leaves := make([]*types.Node, 0, len(entries))
	for _, entry := range entries {
		leaves = append(leaves, &types.Node{Name: entry, Kind: kind})
	}
	return leaves
}

// CategoryDisplayName converts a classifier category key such as
// "programming_languages" to its display form "Programming Languages".
func CategoryDisplayName(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

// titleWord title-cases one word: first letter upper, rest lower. The
// classifier emits ASCII snake_case keys, so byte indexing is safe here.
func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
