package extraction

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/ai-interviewer/internal/types"
)

// ParseResumeContent runs every field extractor over the document and
// assembles the aggregate ParsedResume.
//
// The only fatal condition is empty or whitespace-only input, reported as
// *EmptyInputError. A failure inside any single extractor is recovered
// locally and leaves that field at its empty default; bad or ambiguous
// content degrades to sparse fields, never to an error.
func ParseResumeContent(text string) (*types.ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}

	lines := SegmentLines(text)
	resume := types.NewParsedResume()

	extract(lines, "personal_info", func() {
		resume.PersonalInfo = ExtractPersonalInfo(lines)
	})
	extract(lines, "skills", func() {
		resume.Skills = ExtractSkills(lines)
	})
	extract(lines, "experience", func() {
		resume.Experience = ExtractExperience(lines)
	})
	extract(lines, "projects", func() {
		resume.Projects = ExtractProjects(lines)
	})
	extract(lines, "education", func() {
		resume.Education = ExtractEducation(lines)
	})
	extract(lines, "certifications", func() {
		resume.Certifications = ExtractCertifications(lines)
	})
	extract(lines, "languages", func() {
		resume.Languages = ExtractLanguages(lines)
	})

	return resume, nil
}

// extract runs one field extractor, absorbing any panic so a single bad
// heuristic never aborts the whole parse.
func extract(lines []string, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().
				Str("field", field).
				Int("lines", len(lines)).
				Interface("cause", r).
				Msg("field extractor recovered; leaving field empty")
		}
	}()
	fn()
}
