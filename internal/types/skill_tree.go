package types

import "encoding/json"

// NodeKind tags a skill tree node with its semantic origin. Category nodes
// are internal by construction; the other four kinds are always leaves.
type NodeKind string

const (
	// KindCategory is an internal grouping node
	KindCategory NodeKind = "category"
	// KindSkill is a technical, soft, or domain skill leaf
	KindSkill NodeKind = "skill"
	// KindCertification is a certification leaf
	KindCertification NodeKind = "certification"
	// KindQualification is an education or qualification leaf
	KindQualification NodeKind = "qualification"
	// KindRequirement is an experience requirement leaf
	KindRequirement NodeKind = "requirement"
)

// Node is a single node in a skill tree. Children are exclusively owned by
// their parent; the tree is acyclic by construction and never rewired after
// it is built.
type Node struct {
	Name     string
	Children []*Node
	Kind     NodeKind
}

// nodeJSON is the persisted shape of a node. Category nodes carry no "type"
// key on disk; their kind is implied by having children.
type nodeJSON struct {
	Name     string   `json:"name"`
	Children []*Node  `json:"children,omitempty"`
	Kind     NodeKind `json:"type,omitempty"`
}

// MarshalJSON writes the node in the persisted format: "type" is omitted for
// category nodes, and a category node always carries its "children" array
// even when empty.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Kind == KindCategory || (n.Kind == "" && len(n.Children) > 0) {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		return json.Marshal(struct {
			Name     string  `json:"name"`
			Children []*Node `json:"children"`
		}{n.Name, children})
	}
	return json.Marshal(struct {
		Name     string   `json:"name"`
		Kind     NodeKind `json:"type,omitempty"`
		Children []*Node  `json:"children,omitempty"`
	}{n.Name, n.Kind, n.Children})
}

// UnmarshalJSON reads a persisted node. A node without a "type" key that has
// children is restored as a category; a childless untyped node keeps an
// empty kind and is resolved by EffectiveKind at the point of use.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	n.Name = in.Name
	n.Children = in.Children
	n.Kind = in.Kind
	if n.Kind == "" && len(n.Children) > 0 {
		n.Kind = KindCategory
	}
	return nil
}

// EffectiveKind resolves the node's kind, treating a missing tag as category
// when the node has children and as a plain skill leaf otherwise.
func (n *Node) EffectiveKind() NodeKind {
	if n.Kind != "" {
		return n.Kind
	}
	if len(n.Children) > 0 {
		return KindCategory
	}
	return KindSkill
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// TreeMetadata is the flat job metadata attached alongside the root node of
// a persisted skill tree document. These are sibling keys of the root's own
// name/children keys, not tree nodes.
type TreeMetadata struct {
	JobID          int64  `json:"job_id"`
	JobTitle       string `json:"job_title"`
	Location       string `json:"location"`
	ApplicationURL string `json:"application_url,omitempty"`
}
