package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractExperience builds job entries from the experience section. Plain
// resumes are handled by separator-based boundaries ("Title at Company");
// bulleted resumes get the stricter line classifier. Entries are
// deduplicated by the (title, company) pair.
func ExtractExperience(lines []string) []types.Experience {
	content := sectionContent("experience", lines)
	if len(content) == 0 {
		return []types.Experience{}
	}

	var entries []types.Experience
	if hasBulletedContent(content) {
		entries = parseBulletedExperience(content)
	} else {
		entries = parseSimpleExperience(content)
	}

	return dedupeExperience(entries)
}

// hasBulletedContent reports whether any content line carries a bullet
// marker, which selects the stricter classifier.
func hasBulletedContent(content []string) bool {
	for _, line := range content {
		if hasBulletPrefix(line) {
			return true
		}
	}
	return false
}

// parseSimpleExperience treats a line as a new job boundary when it contains
// " at ", " - ", or "|". Longer non-boundary lines become the running
// description; only the first description line per entry is kept.
func parseSimpleExperience(content []string) []types.Experience {
	var entries []types.Experience
	var current *types.Experience

	push := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range content {
		if entry, ok := splitJobBoundary(line); ok {
			push()
			current = &entry
			continue
		}
		if current != nil && current.Description == "" && len(line) > 30 {
			current.Description = line
		}
	}
	push()
	return entries
}

// splitJobBoundary splits a boundary line into (title, company) and, when a
// trailing segment follows the company, a description.
func splitJobBoundary(line string) (types.Experience, bool) {
	if before, after, found := strings.Cut(line, " at "); found {
		entry := types.Experience{Title: strings.TrimSpace(before)}
		if company, rest, dashed := strings.Cut(after, " - "); dashed {
			entry.Company = strings.TrimSpace(company)
			entry.Description = strings.TrimSpace(rest)
		} else {
			entry.Company = strings.TrimSpace(after)
		}
		return entry, true
	}
	if before, after, found := strings.Cut(line, " - "); found {
		return types.Experience{
			Title:   strings.TrimSpace(before),
			Company: strings.TrimSpace(after),
		}, true
	}
	if strings.Contains(line, "|") {
		parts := strings.Split(line, "|")
		entry := types.Experience{Title: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			entry.Duration = strings.TrimSpace(parts[2])
		}
		return entry, true
	}
	return types.Experience{}, false
}

// parseBulletedExperience classifies each line as a company name, a job
// title, a duration, or a bullet description. The company check runs before
// the job-title check; that evaluation order is the tie-break for lines that
// satisfy both predicates.
func parseBulletedExperience(content []string) []types.Experience {
	var entries []types.Experience
	current := types.Experience{}
	var bullets []string

	flush := func() {
		if len(bullets) > 0 {
			current.Description = strings.Join(bullets, " ")
			bullets = nil
		}
		if current != (types.Experience{}) {
			entries = append(entries, current)
		}
		current = types.Experience{}
	}

	for i, line := range content {
		next := ""
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch {
		case hasBulletPrefix(line):
			bullets = append(bullets, stripBullet(line))
		case isCompanyLine(line, next):
			if current.Company != "" || len(bullets) > 0 {
				flush()
			}
			current.Company = line
		case isJobTitleLine(line, next):
			if current.Title != "" {
				flush()
			}
			current.Title = line
		case yearPattern.MatchString(line) && wordCount(line) <= 6:
			if current.Duration == "" {
				current.Duration = line
			}
		}
	}
	flush()
	return entries
}

// isCompanyLine reports whether the line reads like a company name:
// title-case or all-caps, 10-100 characters, no job-title keyword, and a
// location-like following line.
func isCompanyLine(line, next string) bool {
	if len(line) < 10 || len(line) > 100 {
		return false
	}
	if containsAny(strings.ToLower(line), jobTitleKeywords) {
		return false
	}
	if !isTitleCasedPhrase(line) && !isAllCaps(line) {
		return false
	}
	return isLocationLike(next)
}

// isJobTitleLine reports whether the line reads like a job title: it
// contains a job-title keyword, is a short phrase or followed by a year
// line, and is not itself a location.
func isJobTitleLine(line, next string) bool {
	if !containsAny(strings.ToLower(line), jobTitleKeywords) {
		return false
	}
	if isLocationLike(line) {
		return false
	}
	return len(line) <= 60 || yearPattern.MatchString(next)
}

// dedupeExperience removes entries that repeat an already-seen
// (title, company) pair, keeping document order.
func dedupeExperience(entries []types.Experience) []types.Experience {
	out := []types.Experience{}
	seen := map[string]bool{}
	for _, e := range entries {
		key := strings.ToLower(e.Title) + "\x00" + strings.ToLower(e.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
