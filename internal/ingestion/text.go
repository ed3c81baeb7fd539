package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpaces = regexp.MustCompile(`\s+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes whitespace in document text without flattening its
// line structure. Headings and bullet markers survive, runs of blank
// lines shrink to one, and whitespace inside a line collapses to single
// spaces.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	joined := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(joined)
}

var bulletMarkers = []string{"- ", "* ", "• ", "· "}

func isBulletLine(trimmed string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// cleanLine collapses inner whitespace while keeping leading indentation.
// Markdown headings lose their indent instead, so section markers start
// at column zero.
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := strings.Repeat(" ", len(line)-len(trimmed))
	switch {
	case strings.HasPrefix(trimmed, "#"):
		return strings.TrimRight(trimmed, " \t")
	case isBulletLine(trimmed):
		return indent + strings.TrimRight(trimmed, " \t")
	default:
		return indent + innerSpaces.ReplaceAllString(strings.TrimSpace(line), " ")
	}
}

// ReadResumeFile loads a resume document from disk and returns its
// cleaned text via ResumeText.
func ReadResumeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return ResumeText(data)
}

// ResumeText returns cleaned resume text from raw document bytes. PDF
// documents go through the PDF extractor; anything else is treated as
// plain text.
func ResumeText(data []byte) (string, error) {
	if len(data) >= len(pdfMagic) && string(data[:len(pdfMagic)]) == string(pdfMagic) {
		return ExtractPDFText(data)
	}
	return CleanText(string(data)), nil
}
