package llm

import "strings"

// ExtractionSchema describes a structured extraction task. The schema is
// rendered into the prompt, so field order is the order the model sees.
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// SchemaField is one expected field in the extraction output. Type is a
// free-form hint shown to the model, for example "[\"string\"]".
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

func (f SchemaField) hint() string {
	hint := f.Type
	if hint == "" {
		hint = "string"
	}
	if f.Required {
		hint += " (required)"
	}
	return hint
}

// BuildExtractionPrompt renders the schema and input text as a prompt
// instructing the model to return one JSON object and nothing else.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder
	sb.WriteString(schema.Description)

	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		sb.WriteString("  \"" + field.Name + "\": " + field.hint())
		if i < len(schema.Fields)-1 {
			sb.WriteByte(',')
		}
		if field.Description != "" {
			sb.WriteString(" // " + field.Description)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")

	sb.WriteString("\nIMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	sb.WriteString("\nInput text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// JobPostingSchema returns the extraction schema for fetched job postings.
// The output feeds question generation and answer-relevance checks.
func JobPostingSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobPosting",
		Description: `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract the role, company, and requirements from a raw job posting.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Job title exactly as posted",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Hiring company name",
				Required:    false,
			},
			{
				Name:        "requirements",
				Type:        "\"string\"",
				Description: "Technical requirements, qualifications, skills needed - copy verbatim, newline separated",
				Required:    true,
			},
		},
	}
}

// ResumeSchema returns the extraction schema for resume text. It mirrors
// the fields the heuristic parser produces so either source can fill a
// ParsedResume.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Resume",
		Description: `You are an expert resume parser. Extract structured candidate information from raw resume text.
Preserve the candidate's own wording for titles, companies, and project names.`,
		Fields: []SchemaField{
			{
				Name:        "personalInfo",
				Type:        "{\"name\": \"string\", \"email\": \"string\", \"phone\": \"string\", \"location\": \"string\"}",
				Description: "Contact details found in the document",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technical skills, one entry per skill",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[{\"title\": \"string\", \"company\": \"string\", \"duration\": \"string\", \"description\": \"string\"}]",
				Description: "Work history entries, most recent first",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[{\"name\": \"string\", \"description\": \"string\", \"technologies\": [\"string\"]}]",
				Description: "Personal or professional projects",
				Required:    false,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\", \"year\": \"string\"}]",
				Description: "Education entries",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Certifications and licenses",
				Required:    false,
			},
			{
				Name:        "languages",
				Type:        "[\"string\"]",
				Description: "Spoken languages",
				Required:    false,
			},
		},
	}
}
