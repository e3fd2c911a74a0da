package tree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

func sampleRecord() *types.SkillRecord {
	return &types.SkillRecord{
		Technical: types.NewTechnicalSkills(
			types.TechnicalCategory{Name: "programming_languages", Skills: []string{"Python", "Go"}},
			types.TechnicalCategory{Name: "tools", Skills: []string{"Docker"}},
		),
		SoftSkills:             []string{"Communication"},
		Certifications:         []string{"AWS Certified"},
		Education:              []string{"BS Computer Science"},
		ExperienceRequirements: []string{"5+ years"},
	}
}

func TestSerialize_FlatEnvelope(t *testing.T) {
	root := Build(sampleRecord())
	meta := types.TreeMetadata{
		JobID:          4922802007,
		JobTitle:       "Backend Engineer",
		Location:       "Palo Alto, CA",
		ApplicationURL: "https://example.com/apply",
	}

	data, err := Serialize(root, meta)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	// Metadata keys sit alongside the root's own fields in one flat object.
	assert.Equal(t, "Skills", doc["name"])
	assert.Contains(t, doc, "children")
	assert.Equal(t, float64(4922802007), doc["job_id"])
	assert.Equal(t, "Backend Engineer", doc["job_title"])
	assert.Equal(t, "Palo Alto, CA", doc["location"])
	assert.Equal(t, "https://example.com/apply", doc["application_url"])
}

func TestSerialize_OmitsEmptyApplicationURL(t *testing.T) {
	root := Build(sampleRecord())
	data, err := Serialize(root, types.TreeMetadata{JobID: 1, JobTitle: "X", Location: "Y"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "application_url")
}

func TestSerialize_PrettyPrintedStableOrder(t *testing.T) {
	root := Build(sampleRecord())
	data, err := Serialize(root, types.TreeMetadata{JobID: 7, JobTitle: "T", Location: "L"})
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"name\""), "document starts with the root name key")
	assert.Less(t, strings.Index(text, "\"name\""), strings.Index(text, "\"children\""))
	assert.Less(t, strings.Index(text, "\"children\""), strings.Index(text, "\"job_id\""))
	assert.Less(t, strings.Index(text, "\"job_id\""), strings.Index(text, "\"job_title\""))
}

func TestSerialize_CategoryNodesOmitType(t *testing.T) {
	root := Build(sampleRecord())
	data, err := Serialize(root, types.TreeMetadata{})
	require.NoError(t, err)

	var doc struct {
		Children []map[string]json.RawMessage `json:"children"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Children)

	// Depth-1 branches are categories: no "type" key, "children" present.
	for _, child := range doc.Children {
		assert.NotContains(t, child, "type")
		assert.Contains(t, child, "children")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record *types.SkillRecord
		meta   types.TreeMetadata
	}{
		{
			name:   "full record",
			record: sampleRecord(),
			meta: types.TreeMetadata{
				JobID:          42,
				JobTitle:       "Engineer",
				Location:       "Remote",
				ApplicationURL: "https://boards.greenhouse.io/x/jobs/42",
			},
		},
		{
			name:   "empty record",
			record: &types.SkillRecord{},
			meta:   types.TreeMetadata{JobID: 1, JobTitle: "Empty", Location: "N/A"},
		},
		{
			name:   "no application url",
			record: &types.SkillRecord{Domains: []string{"Robotics"}},
			meta:   types.TreeMetadata{JobID: 2, JobTitle: "Roboticist", Location: "Austin, TX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Build(tt.record)
			data, err := Serialize(original, tt.meta)
			require.NoError(t, err)

			restored, meta, err := Deserialize(data)
			require.NoError(t, err)
			assert.Equal(t, tt.meta, meta)
			assert.Equal(t, original, restored)
		})
	}
}

func TestDeserialize_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"missing children", `{"name": "Skills", "job_id": 1}`},
		{"missing name", `{"children": [], "job_id": 1}`},
		{"children wrong type", `{"name": "Skills", "children": "nope"}`},
		{"name wrong type", `{"name": 12, "children": []}`},
		{"job_id wrong type", `{"name": "Skills", "children": [], "job_id": "abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Deserialize([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestDeserialize_UntypedLeafResolvesByUse(t *testing.T) {
	data := `{
		"name": "Skills",
		"children": [
			{"name": "Mystery"}
		],
		"job_id": 3,
		"job_title": "T",
		"location": "L"
	}`

	root, _, err := Deserialize([]byte(data))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	leaf := root.Children[0]
	assert.Equal(t, types.NodeKind(""), leaf.Kind)
	assert.Equal(t, types.KindSkill, leaf.EffectiveKind())
}

func TestDeserialize_UntypedInternalNodeIsCategory(t *testing.T) {
	data := `{
		"name": "Skills",
		"children": [
			{"name": "Group", "children": [{"name": "Go", "type": "skill"}]}
		],
		"job_id": 3,
		"job_title": "T",
		"location": "L"
	}`

	root, _, err := Deserialize([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, types.KindCategory, root.Children[0].Kind)
}

func TestIsMetadataKey(t *testing.T) {
	assert.True(t, IsMetadataKey("job_id"))
	assert.True(t, IsMetadataKey("application_url"))
	assert.False(t, IsMetadataKey("name"))
	assert.False(t, IsMetadataKey("children"))
}
