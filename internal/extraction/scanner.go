package extraction

import "strings"

// scanState is the position of a sectionScanner within its single forward
// pass over the document.
type scanState int

const (
	stateBefore scanState = iota
	stateInSection
	stateDone
)

// sectionScanner is a small finite-state machine shared by all
// section-scoped extractors: Before -> InSection on an entry-keyword match,
// InSection -> Done on a foreign-header match. Once Done, the section cannot
// be re-entered; the first occurrence governs.
type sectionScanner struct {
	entry []string
	exit  []string
	state scanState
}

// newSectionScanner builds a scanner for the named section, using every
// other known section's headers as exit keywords.
func newSectionScanner(section string) *sectionScanner {
	return &sectionScanner{
		entry: sectionHeaders[section],
		exit:  exitKeywordsFor(section),
	}
}

// Step consumes one line and reports whether it is section content. The
// header line itself and the terminating line are not content; only lines
// strictly between entry and exit are.
func (s *sectionScanner) Step(line string) bool {
	lower := strings.ToLower(line)
	switch s.state {
	case stateBefore:
		if containsAny(lower, s.entry) {
			s.state = stateInSection
		}
		return false
	case stateInSection:
		if containsAny(lower, s.exit) {
			s.state = stateDone
			return false
		}
		return true
	default:
		return false
	}
}

// sectionContent runs the scanner over all lines and returns the content
// lines of the section, in document order.
func sectionContent(section string, lines []string) []string {
	sc := newSectionScanner(section)
	var content []string
	for _, line := range lines {
		if sc.Step(line) {
			content = append(content, line)
		}
	}
	return content
}
