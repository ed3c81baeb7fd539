// Package extraction turns raw resume text into a structured ParsedResume
// using heuristic, rule-based section scanning. It is deliberately a
// best-effort pass over plain text, not a document-layout parser.
package extraction

import "strings"

// SegmentLines splits raw extracted text into non-empty trimmed lines.
// All field extractors consume this shared line sequence.
func SegmentLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// wordCount counts whitespace-separated non-empty tokens.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// containsAny reports whether lower contains any of the given lowercase
// keywords as a substring.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
