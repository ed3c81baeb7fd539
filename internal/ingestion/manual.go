package ingestion

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ai-interviewer/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ManualEntry is the resume shape candidates type in when no document
// upload is available. Validation is deliberately loose: only a name and at
// least one skill or experience entry are required to run an interview.
type ManualEntry struct {
	Name       string            `json:"name" validate:"required,min=2,max=120"`
	Email      string            `json:"email" validate:"omitempty,email"`
	Phone      string            `json:"phone" validate:"omitempty,min=7,max=25"`
	Location   string            `json:"location" validate:"omitempty,max=120"`
	Skills     []string          `json:"skills" validate:"dive,min=1,max=60"`
	Experience []ManualRole      `json:"experience" validate:"dive"`
	Education  []ManualEducation `json:"education" validate:"dive"`
}

// ManualRole is one work history entry of a ManualEntry.
type ManualRole struct {
	Title       string `json:"title" validate:"required,max=120"`
	Company     string `json:"company" validate:"omitempty,max=120"`
	Duration    string `json:"duration" validate:"omitempty,max=60"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// ManualEducation is one education entry of a ManualEntry.
type ManualEducation struct {
	Degree      string `json:"degree" validate:"required,max=160"`
	Institution string `json:"institution" validate:"omitempty,max=160"`
	Year        string `json:"year" validate:"omitempty,len=4,numeric"`
}

// FromManualEntry validates a manual entry and converts it to a
// ParsedResume equivalent to what document extraction would have produced.
func FromManualEntry(entry ManualEntry) (*types.ParsedResume, error) {
	if err := validate.Struct(entry); err != nil {
		return nil, fmt.Errorf("invalid manual entry: %w", err)
	}
	if len(entry.Skills) == 0 && len(entry.Experience) == 0 {
		return nil, fmt.Errorf("invalid manual entry: at least one skill or experience entry is required")
	}

	resume := types.NewParsedResume()
	resume.PersonalInfo = types.PersonalInfo{
		Name:     entry.Name,
		Email:    entry.Email,
		Phone:    entry.Phone,
		Location: entry.Location,
	}
	resume.Skills = append(resume.Skills, entry.Skills...)
	for _, role := range entry.Experience {
		resume.Experience = append(resume.Experience, types.Experience{
			Title:       role.Title,
			Company:     role.Company,
			Duration:    role.Duration,
			Description: role.Description,
		})
	}
	for _, ed := range entry.Education {
		resume.Education = append(resume.Education, types.Education{
			Degree:      ed.Degree,
			Institution: ed.Institution,
			Year:        ed.Year,
		})
	}
	return resume, nil
}
