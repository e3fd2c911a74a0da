package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

func TestBuild_EmptyRecord(t *testing.T) {
	root := Build(&types.SkillRecord{})
	require.NotNil(t, root)

	assert.Equal(t, RootName, root.Name)
	assert.Equal(t, types.KindCategory, root.Kind)
	assert.Empty(t, root.Children)
}

func TestBuild_NilRecord(t *testing.T) {
	root := Build(nil)
	require.NotNil(t, root)
	assert.Equal(t, RootName, root.Name)
	assert.Empty(t, root.Children)
}

func TestBuild_BranchOrdering(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "programming_languages", Skills: []string{"Go"}},
		),
		SoftSkills:             []string{"Communication"},
		Domains:                []string{"Distributed Systems"},
		Certifications:         []string{"CKA"},
		Education:              []string{"BS Computer Science"},
		ExperienceRequirements: []string{"5+ years backend"},
	}

	root := Build(record)
	require.Len(t, root.Children, 6)

	names := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{
		BranchTechnical,
		BranchSoftSkills,
		BranchDomains,
		BranchCertifications,
		BranchEducation,
		BranchExperience,
	}, names)
}

func TestBuild_OmitsEmptyBuckets(t *testing.T) {
	record := &types.SkillRecord{
		SoftSkills:     []string{"Teamwork"},
		Certifications: []string{},
		Education:      []string{"PhD"},
	}

	root := Build(record)
	require.Len(t, root.Children, 2)
	assert.Equal(t, BranchSoftSkills, root.Children[0].Name)
	assert.Equal(t, BranchEducation, root.Children[1].Name)
}

func TestBuild_TechnicalCategoryNaming(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "programming_languages", Skills: []string{"Python"}},
			types.TechnicalCategory{Name: "cloud_platforms", Skills: []string{"AWS"}},
		),
	}

	root := Build(record)
	require.Len(t, root.Children, 1)
	tech := root.Children[0]
	require.Len(t, tech.Children, 2)
	assert.Equal(t, "Programming Languages", tech.Children[0].Name)
	assert.Equal(t, "Cloud Platforms", tech.Children[1].Name)
}

func TestBuild_TechnicalPreservesSourceOrder(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "tools", Skills: []string{"Docker", "Git"}},
			types.TechnicalCategory{Name: "frameworks", Skills: []string{"React"}},
			types.TechnicalCategory{Name: "databases", Skills: []string{"PostgreSQL"}},
		),
	}

	root := Build(record)
	tech := root.Children[0]
	require.Len(t, tech.Children, 3)
	assert.Equal(t, "Tools", tech.Children[0].Name)
	assert.Equal(t, "Frameworks", tech.Children[1].Name)
	assert.Equal(t, "Databases", tech.Children[2].Name)

	require.Len(t, tech.Children[0].Children, 2)
	assert.Equal(t, "Docker", tech.Children[0].Children[0].Name)
	assert.Equal(t, "Git", tech.Children[0].Children[1].Name)
}

func TestBuild_SkipsEmptyTechnicalCategories(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "programming_languages", Skills: nil},
			types.TechnicalCategory{Name: "tools", Skills: []string{"Git"}},
		),
	}

	root := Build(record)
	require.Len(t, root.Children, 1)
	tech := root.Children[0]
	require.Len(t, tech.Children, 1)
	assert.Equal(t, "Tools", tech.Children[0].Name)
}

func TestBuild_AllTechnicalCategoriesEmpty(t *testing.T) {
	// The Technical Skills branch itself is suppressed when every category
	// turns out to be empty.
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "frameworks", Skills: []string{}},
		),
		SoftSkills: []string{"Leadership"},
	}

	root := Build(record)
	require.Len(t, root.Children, 1)
	assert.Equal(t, BranchSoftSkills, root.Children[0].Name)
}

func TestBuild_LeafKinds(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "tools", Skills: []string{"Git"}},
		),
		SoftSkills:             []string{"Communication"},
		Domains:                []string{"Fintech"},
		Certifications:         []string{"AWS Certified"},
		Education:              []string{"BS Computer Science"},
		ExperienceRequirements: []string{"3+ years"},
	}

	root := Build(record)
	require.Len(t, root.Children, 6)

	tests := []struct {
		branch   int
		wantKind types.NodeKind
	}{
		{1, types.KindSkill},         // soft skills
		{2, types.KindSkill},         // domains
		{3, types.KindCertification}, // certifications
		{4, types.KindQualification}, // education
		{5, types.KindRequirement},   // experience requirements
	}
	for _, tt := range tests {
		branch := root.Children[tt.branch]
		require.NotEmpty(t, branch.Children)
		assert.Equal(t, tt.wantKind, branch.Children[0].Kind, "branch %s", branch.Name)
	}

	// Technical leaves are skills two levels down
	tech := root.Children[0]
	assert.Equal(t, types.KindSkill, tech.Children[0].Children[0].Kind)
}

func TestBuild_EducationTaggedQualification(t *testing.T) {
	record := &types.SkillRecord{Education: []string{"BS Computer Science"}}

	root := Build(record)
	require.Len(t, root.Children, 1)
	leaf := root.Children[0].Children[0]
	assert.Equal(t, "BS Computer Science", leaf.Name)
	assert.Equal(t, types.KindQualification, leaf.Kind)
}

func TestBuild_EndToEndScenario(t *testing.T) {
	record := &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "programming_languages", Skills: []string{"Python", "Go"}},
		),
		Certifications: []string{"AWS Certified"},
	}

	root := Build(record)
	require.Len(t, root.Children, 2)

	tech := root.Children[0]
	assert.Equal(t, BranchTechnical, tech.Name)
	require.Len(t, tech.Children, 1)
	langs := tech.Children[0]
	assert.Equal(t, "Programming Languages", langs.Name)
	require.Len(t, langs.Children, 2)
	assert.Equal(t, "Python", langs.Children[0].Name)
	assert.Equal(t, "Go", langs.Children[1].Name)
	assert.Equal(t, types.KindSkill, langs.Children[0].Kind)

	certs := root.Children[1]
	assert.Equal(t, BranchCertifications, certs.Name)
	require.Len(t, certs.Children, 1)
	assert.Equal(t, "AWS Certified", certs.Children[0].Name)
	assert.Equal(t, types.KindCertification, certs.Children[0].Kind)

	skills, err := CollectSkills(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Go"}, skills)
}

func TestCategoryDisplayName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"programming_languages", "Programming Languages"},
		{"tools", "Tools"},
		{"cloud_platforms", "Cloud Platforms"},
		{"ml_frameworks", "Ml Frameworks"},
		{"", ""},
		{"already spaced", "Already Spaced"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryDisplayName(tt.key), "key %q", tt.key)
	}
}
