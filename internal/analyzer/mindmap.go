package analyzer

import (
	"regexp"
	"strings"
)

const (
	fence        = "```"
	mermaidFence = "```mermaid"
)

var reInfoString = regexp.MustCompile(`^[A-Za-z0-9_+.-]+$`)

// ExtractMindMap pulls the diagram code out of a model answer.
//
// A closed ```mermaid fence wins, then the first closed fence of any kind, and
// otherwise the text is returned unchanged. Unterminated fences are ignored.
func ExtractMindMap(text string) string {
	if body, ok := fencedBody(text, mermaidFence); ok {
		return strings.TrimSpace(body)
	}

	if body, ok := fencedBody(text, fence); ok {
		return strings.TrimSpace(dropInfoString(body))
	}

	return text
}

// fencedBody returns the text between the first occurrence of open and the next fence.
func fencedBody(text, open string) (string, bool) {
	start := strings.Index(text, open)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(open):]

	end := strings.Index(rest, fence)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// dropInfoString removes a language tag such as "json" from the opening fence line.
// "mindmap" is diagram content, not a tag.
func dropInfoString(body string) string {
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return body
	}
	first := strings.TrimSpace(body[:nl])
	if first == "" || first == "mindmap" || !reInfoString.MatchString(first) {
		return body
	}
	return body[nl+1:]
}
