package ingestion

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/ai-interviewer/internal/extraction"
	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// extractedResume is the wire shape of the resume extraction prompt. The
// model reports project technologies as a list; ParsedResume stores them
// as a single comma-joined string.
type extractedResume struct {
	PersonalInfo types.PersonalInfo `json:"personalInfo"`
	Skills       []string           `json:"skills"`
	Experience   []types.Experience `json:"experience"`
	Projects     []struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Technologies []string `json:"technologies"`
	} `json:"projects"`
	Education      []types.Education `json:"education"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
}

// ExtractResume structures cleaned resume text into a ParsedResume. The
// model stage uses TierLite; on any model failure, or when the model
// returns an empty document, the heuristic parser serves the result.
func ExtractResume(ctx context.Context, cleanedText string, client llm.Client) (*types.ParsedResume, error) {
	if client != nil {
		resume, err := extractResumeWithModel(ctx, cleanedText, client)
		if err == nil && resume.HasContent() {
			return resume, nil
		}
		log.Warn().Err(err).Msg("model resume extraction failed, using heuristic")
	}
	return extraction.ParseResumeContent(cleanedText)
}

func extractResumeWithModel(ctx context.Context, text string, client llm.Client) (*types.ParsedResume, error) {
	schema := llm.ResumeSchema()
	prompt := llm.BuildExtractionPrompt(schema, text)

	// Structuring, not reasoning, the lite tier is enough
	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	var extracted extractedResume
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &extracted); err != nil {
		return nil, err
	}

	resume := types.NewParsedResume()
	resume.PersonalInfo = extracted.PersonalInfo
	resume.Skills = append(resume.Skills, extracted.Skills...)
	resume.Experience = append(resume.Experience, extracted.Experience...)
	for _, p := range extracted.Projects {
		resume.Projects = append(resume.Projects, types.Project{
			Name:         strings.TrimSpace(p.Name),
			Description:  strings.TrimSpace(p.Description),
			Technologies: strings.Join(p.Technologies, ", "),
		})
	}
	resume.Education = append(resume.Education, extracted.Education...)
	resume.Certifications = append(resume.Certifications, extracted.Certifications...)
	resume.Languages = append(resume.Languages, extracted.Languages...)
	return resume, nil
}
