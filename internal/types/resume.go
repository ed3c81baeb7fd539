// Package types defines the shared data structures exchanged between the
// extraction, scoring, and interview components.
package types

// PersonalInfo holds contact details pulled from the top of a resume.
// Every field is optional; first match wins during extraction.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience is a single job entry in document order. Entries may be
// partially populated.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a single project entry in document order.
type Project struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

// Education is a single education entry in document order.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ParsedResume is the aggregate result of one parse call. It is never
// mutated after being returned.
//
// Every top-level field defaults to an empty container, never nil, so
// downstream consumers (question templates, scoring) only null-check leaf
// fields. Use NewParsedResume to construct one.
type ParsedResume struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Projects       []Project    `json:"projects"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// NewParsedResume returns a resume with every collection initialized.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Skills:         []string{},
		Experience:     []Experience{},
		Projects:       []Project{},
		Education:      []Education{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// HasContent reports whether any field was populated by extraction.
func (r *ParsedResume) HasContent() bool {
	if r == nil {
		return false
	}
	return r.PersonalInfo != (PersonalInfo{}) ||
		len(r.Skills) > 0 ||
		len(r.Experience) > 0 ||
		len(r.Projects) > 0 ||
		len(r.Education) > 0 ||
		len(r.Certifications) > 0 ||
		len(r.Languages) > 0
}
