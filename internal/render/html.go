package render

import (
	"encoding/json"
	"html"
	"strings"
	"text/template"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// templateData is the data passed to the visualization template. Title is
// HTML-escaped before execution; Payload is the tree JSON inlined verbatim
// as the static data block the client engine runs on.
type templateData struct {
	Title   string
	Payload string
}

// HTML renders a skill tree as a self-contained interactive document. The
// only external reference is the D3 script tag; everything else, tree data
// included, is inlined. An empty tree renders as just the root node.
func HTML(root *types.Node, title string) (string, error) {
	if root == nil {
		root = &types.Node{Name: "Skills", Kind: types.KindCategory, Children: []*types.Node{}}
	}

	payload, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", &RenderError{Message: "failed to encode tree payload", Cause: err}
	}

	tmpl, err := template.New("skill_tree").Parse(visualizationTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse visualization template", Cause: err}
	}

	var out strings.Builder
	data := templateData{
		Title:   html.EscapeString(title),
		Payload: string(payload),
	}
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute visualization template", Cause: err}
	}

	return out.String(), nil
}
