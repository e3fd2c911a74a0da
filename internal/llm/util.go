// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips the noise classifier models wrap around JSON output:
// markdown code fences, conversational preambles, and trailing commentary.
// The first balanced JSON object or array is returned; when none is present
// the fence-stripped text comes back unchanged so callers can surface it in
// parse errors.
func CleanJSONBlock(text string) string {
	text = stripCodeFence(strings.TrimSpace(text))

	objIdx := strings.IndexByte(text, '{')
	arrIdx := strings.IndexByte(text, '[')
	if objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx) {
		if obj := extractJSONObject(text); obj != "" {
			return obj
		}
	}
	if arrIdx >= 0 {
		if arr := extractJSONArray(text); arr != "" {
			return arr
		}
	}
	return text
}

// stripCodeFence removes markdown code block wrappers. Classifier models wrap
// JSON in ```json ... ``` blocks even when the prompt asks for bare JSON.
func stripCodeFence(text string) string {
	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// extractJSONObject returns the first balanced JSON object in s, or "" when
// none exists.
func extractJSONObject(s string) string {
	return balancedSpan(s, '{', '}')
}

// extractJSONArray returns the first balanced JSON array in s, or "" when
// none exists.
func extractJSONArray(s string) string {
	return balancedSpan(s, '[', ']')
}

// balancedSpan scans from the first open delimiter to its matching close.
// Delimiter counting is string-aware so braces and brackets inside JSON
// string values do not end the span early.
func balancedSpan(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
