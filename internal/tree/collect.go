package tree

import (
	"fmt"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// MaxTraversalDepth bounds tree traversal. Builder-produced trees are at
// most four levels deep; anything beyond this bound indicates a corrupted
// or adversarial document rather than real data.
const MaxTraversalDepth = 512

// CollectSkills walks the tree depth-first in pre-order and returns the
// names of all nodes tagged as skills, at any depth. Category nodes and the
// other leaf kinds are traversed but not emitted. The collector itself is
// unbounded in output size; any truncation is the caller's concern.
//
// The traversal uses an explicit stack with a depth bound so a corrupted
// document (or an accidental cycle) fails with ErrMalformedDocument instead
// of exhausting the call stack.
func CollectSkills(root *types.Node) ([]string, error) {
	skills := []string{}
	if root == nil {
		return skills, nil
	}

	type frame struct {
		node  *types.Node
		depth int
	}
	stack := []frame{{root, 0}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > MaxTraversalDepth {
			return nil, &MalformedDocumentError{
				Message: fmt.Sprintf("tree deeper than %d levels", MaxTraversalDepth),
			}
		}
		if top.node == nil {
			continue
		}

		if top.node.Kind == types.KindSkill {
			skills = append(skills, top.node.Name)
		}

		// Push children in reverse so they pop in source order.
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}

	return skills, nil
}

// CountNodes returns the number of nodes in the tree, root included. Used
// for reporting; shares the collector's depth bound.
func CountNodes(root *types.Node) (int, error) {
	if root == nil {
		return 0, nil
	}
	count := 0
	type frame struct {
		node  *types.Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > MaxTraversalDepth {
			return 0, &MalformedDocumentError{
				Message: fmt.Sprintf("tree deeper than %d levels", MaxTraversalDepth),
			}
		}
		if top.node == nil {
			continue
		}
		count++
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}
	return count, nil
}
