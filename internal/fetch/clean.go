package fetch

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	tagRE        = regexp.MustCompile(`<[^>]*>`)
)

// DecodeContent unescapes the HTML-entity-encoded posting body the boards
// API returns. The result is still HTML.
func DecodeContent(content string) string {
	if content == "" {
		return ""
	}
	return html.UnescapeString(content)
}

// CleanDescription strips markup from a job description and collapses all
// whitespace runs to single spaces, yielding plain text suitable for the
// classifier and the attribute extractors. Input that fails to parse as
// HTML is cleaned as raw text.
func CleanDescription(description string) string {
	if description == "" {
		return ""
	}

	text := html.UnescapeString(description)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err == nil {
		doc.Find("script, style, noscript").Remove()
		if markup, merr := doc.Html(); merr == nil {
			// doc.Text joins adjacent block elements with no separator, so
			// tags become spaces instead; the collapse below normalizes them.
			text = html.UnescapeString(tagRE.ReplaceAllString(markup, " "))
		} else {
			text = doc.Text()
		}
	}

	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
