package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManualEntry() ManualEntry {
	return ManualEntry{
		Name:   "John Smith",
		Email:  "john@example.com",
		Phone:  "555-123-4567",
		Skills: []string{"Python", "React"},
		Experience: []ManualRole{
			{Title: "Software Engineer", Company: "Tech Corp", Duration: "2020-2023"},
		},
		Education: []ManualEducation{
			{Degree: "BS Computer Science", Institution: "State University", Year: "2019"},
		},
	}
}

func TestFromManualEntry_Valid(t *testing.T) {
	resume, err := FromManualEntry(validManualEntry())
	require.NoError(t, err)

	assert.Equal(t, "John Smith", resume.PersonalInfo.Name)
	assert.Equal(t, "john@example.com", resume.PersonalInfo.Email)
	assert.Equal(t, []string{"Python", "React"}, resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Tech Corp", resume.Experience[0].Company)
	require.Len(t, resume.Education, 1)
	assert.Equal(t, "2019", resume.Education[0].Year)

	// Untouched collections stay non-nil
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Languages)
}

func TestFromManualEntry_MissingName(t *testing.T) {
	entry := validManualEntry()
	entry.Name = ""

	_, err := FromManualEntry(entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manual entry")
}

func TestFromManualEntry_BadEmail(t *testing.T) {
	entry := validManualEntry()
	entry.Email = "not-an-email"

	_, err := FromManualEntry(entry)
	assert.Error(t, err)
}

func TestFromManualEntry_NeedsSkillOrExperience(t *testing.T) {
	entry := ManualEntry{Name: "Jane Doe"}

	_, err := FromManualEntry(entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one skill or experience")
}

func TestFromManualEntry_SkillsOnly(t *testing.T) {
	entry := ManualEntry{Name: "Jane Doe", Skills: []string{"Golang"}}

	resume, err := FromManualEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, []string{"Golang"}, resume.Skills)
	assert.Empty(t, resume.Experience)
}

func TestFromManualEntry_InvalidYear(t *testing.T) {
	entry := validManualEntry()
	entry.Education[0].Year = "19"

	_, err := FromManualEntry(entry)
	assert.Error(t, err)
}
