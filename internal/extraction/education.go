package extraction

import (
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

// ExtractEducation classifies each line of the education section as an
// institution, a degree, or a year/location line, in that priority order.
// A second degree line after one is already set closes the entry and starts
// a new one.
func ExtractEducation(lines []string) []types.Education {
	content := sectionContent("education", lines)
	if len(content) == 0 {
		return []types.Education{}
	}

	entries := []types.Education{}
	current := types.Education{}

	push := func() {
		if current != (types.Education{}) {
			entries = append(entries, current)
		}
		current = types.Education{}
	}

	for _, line := range content {
		stripped := stripBullet(line)
		lower := strings.ToLower(stripped)

		switch {
		case containsAny(lower, institutionKeywords):
			if current.Institution != "" {
				push()
			}
			current.Institution = stripped
			// Institution lines often carry the graduation year too.
			if current.Year == "" {
				current.Year = yearPattern.FindString(stripped)
			}
		case isDegreeLine(lower):
			if current.Degree != "" {
				push()
			}
			current.Degree = stripped
			if current.Year == "" {
				current.Year = yearPattern.FindString(stripped)
			}
		case yearPattern.MatchString(stripped) || isLocationLike(stripped):
			if current.Year == "" {
				if y := yearPattern.FindString(stripped); y != "" {
					current.Year = y
				} else {
					current.Year = stripped
				}
			}
		}
	}
	push()
	return entries
}

// isDegreeLine reports whether the lowercased line mentions a degree
// keyword or a grade marker (GPA, percent).
func isDegreeLine(lower string) bool {
	if containsAny(lower, degreeKeywords) {
		return true
	}
	return strings.Contains(lower, "gpa") || strings.Contains(lower, "%")
}
