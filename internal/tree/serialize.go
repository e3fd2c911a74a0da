package tree

import (
	"encoding/json"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// persistedDocument is the flat on-disk shape of a skill tree: the root
// node's own fields with the job metadata merged in as sibling keys. Field
// order here fixes the key order of the written JSON.
type persistedDocument struct {
	Name           string        `json:"name"`
	Children       []*types.Node `json:"children"`
	JobID          int64         `json:"job_id"`
	JobTitle       string        `json:"job_title"`
	Location       string        `json:"location"`
	ApplicationURL string        `json:"application_url,omitempty"`
}

// metadataKeys is the allow-list that separates metadata from tree-root
// fields when reading a document back.
var metadataKeys = map[string]bool{
	"job_id":          true,
	"job_title":       true,
	"location":        true,
	"application_url": true,
}

// Serialize merges a built tree and its job metadata into one flat,
// pretty-printed JSON document.
func Serialize(root *types.Node, meta types.TreeMetadata) ([]byte, error) {
	children := root.Children
	if children == nil {
		children = []*types.Node{}
	}
	doc := persistedDocument{
		Name:           root.Name,
		Children:       children,
		JobID:          meta.JobID,
		JobTitle:       meta.JobTitle,
		Location:       meta.Location,
		ApplicationURL: meta.ApplicationURL,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Deserialize is the inverse of Serialize. Metadata keys are recognized by
// a fixed allow-list; everything else at the top level belongs to the tree
// root. A document missing its name or children, or carrying them with the
// wrong types, fails with an error matching ErrMalformedDocument.
func Deserialize(data []byte) (*types.Node, types.TreeMetadata, error) {
	var meta types.TreeMetadata

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, meta, &MalformedDocumentError{Message: "not a JSON object", Cause: err}
	}

	nameRaw, ok := raw["name"]
	if !ok {
		return nil, meta, &MalformedDocumentError{Field: "name", Message: "missing"}
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return nil, meta, &MalformedDocumentError{Field: "name", Message: "must be a string", Cause: err}
	}

	childrenRaw, ok := raw["children"]
	if !ok {
		return nil, meta, &MalformedDocumentError{Field: "children", Message: "missing"}
	}
	var children []*types.Node
	if err := json.Unmarshal(childrenRaw, &children); err != nil {
		return nil, meta, &MalformedDocumentError{Field: "children", Message: "must be an array of nodes", Cause: err}
	}
	if children == nil {
		children = []*types.Node{}
	}

	root := &types.Node{Name: name, Children: children, Kind: types.KindCategory}
	if kindRaw, ok := raw["type"]; ok {
		var kind types.NodeKind
		if err := json.Unmarshal(kindRaw, &kind); err != nil {
			return nil, meta, &MalformedDocumentError{Field: "type", Message: "must be a string", Cause: err}
		}
		root.Kind = kind
	}

	if err := readMetadata(raw, &meta); err != nil {
		return nil, meta, err
	}
	return root, meta, nil
}

func readMetadata(raw map[string]json.RawMessage, meta *types.TreeMetadata) error {
	if idRaw, ok := raw["job_id"]; ok {
		if err := json.Unmarshal(idRaw, &meta.JobID); err != nil {
			return &MalformedDocumentError{Field: "job_id", Message: "must be an integer", Cause: err}
		}
	}
	if titleRaw, ok := raw["job_title"]; ok {
		if err := json.Unmarshal(titleRaw, &meta.JobTitle); err != nil {
			return &MalformedDocumentError{Field: "job_title", Message: "must be a string", Cause: err}
		}
	}
	if locRaw, ok := raw["location"]; ok {
		if err := json.Unmarshal(locRaw, &meta.Location); err != nil {
			return &MalformedDocumentError{Field: "location", Message: "must be a string", Cause: err}
		}
	}
	if urlRaw, ok := raw["application_url"]; ok {
		if err := json.Unmarshal(urlRaw, &meta.ApplicationURL); err != nil {
			return &MalformedDocumentError{Field: "application_url", Message: "must be a string", Cause: err}
		}
	}
	return nil
}

// IsMetadataKey reports whether a top-level document key belongs to the
// metadata envelope rather than the tree root.
func IsMetadataKey(key string) bool {
	return metadataKeys[key]
}
