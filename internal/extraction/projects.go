package extraction

import (
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

// technology line prefixes that promote a description line into the
// Technologies field.
var techPrefixes = []string{"technologies:", "tech stack:", "stack:", "built with:", "tools:"}

// ExtractProjects builds project entries from the projects section. On
// bulleted resumes a name boundary is a moderate-length line containing a
// colon; otherwise any short line starts a new project. Bullet and prose
// lines accumulate as the description until the next boundary. Entries are
// deduplicated by name.
func ExtractProjects(lines []string) []types.Project {
	content := sectionContent("projects", lines)
	if len(content) == 0 {
		return []types.Project{}
	}

	bulleted := hasBulletedContent(content)

	var projects []types.Project
	var current *types.Project
	var desc []string

	push := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(desc, " ")
		projects = append(projects, *current)
		current = nil
		desc = nil
	}

	for _, line := range content {
		if name, rest, ok := projectBoundary(line, bulleted, current, desc); ok {
			push()
			current = &types.Project{Name: name}
			if rest != "" {
				desc = append(desc, rest)
			}
			continue
		}
		if current == nil {
			continue
		}
		stripped := stripBullet(line)
		if tech, ok := technologiesLine(stripped); ok {
			if current.Technologies == "" {
				current.Technologies = tech
			}
			continue
		}
		desc = append(desc, stripped)
	}
	push()

	return dedupeProjects(projects)
}

// projectBoundary decides whether the line starts a new project and returns
// the project name plus any remainder that belongs to the description.
func projectBoundary(line string, bulleted bool, current *types.Project, desc []string) (string, string, bool) {
	if bulleted {
		// Stricter variant: a name line holds a colon and is of moderate
		// length, e.g. "Inventory Tracker: warehouse stock dashboard".
		if len(line) < 10 || len(line) > 100 || hasBulletPrefix(line) {
			return "", "", false
		}
		name, rest, found := strings.Cut(line, ":")
		if !found {
			return "", "", false
		}
		return strings.TrimSpace(name), strings.TrimSpace(rest), true
	}
	// Simple variant: a short line starts a project when no name is pending
	// or the previous entry already accumulated a description.
	if len(line) >= 50 {
		return "", "", false
	}
	if current != nil && len(desc) == 0 && current.Technologies == "" {
		return "", "", false
	}
	if name, rest, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(name), strings.TrimSpace(rest), true
	}
	return strings.TrimSpace(line), "", true
}

// technologiesLine extracts the technology list from lines like
// "Technologies: Go, Postgres".
func technologiesLine(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, p := range techPrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

// dedupeProjects removes entries repeating an already-seen name, keeping
// document order.
func dedupeProjects(projects []types.Project) []types.Project {
	out := []types.Project{}
	seen := map[string]bool{}
	for _, p := range projects {
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
