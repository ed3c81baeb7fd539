package questions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/types"
)

func sampleResume() *types.ParsedResume {
	r := types.NewParsedResume()
	r.PersonalInfo.Name = "John Smith"
	r.Skills = []string{"Python", "React", "AWS"}
	r.Experience = []types.Experience{
		{Title: "Software Engineer", Company: "Tech Corp"},
	}
	r.Projects = []types.Project{
		{Name: "Inventory Tracker", Description: "Warehouse tool"},
	}
	return r
}

func TestGenerate_AlwaysFiveQuestions(t *testing.T) {
	job := types.Job{Title: "Software Engineer"}

	tests := []struct {
		name   string
		resume *types.ParsedResume
	}{
		{"full resume", sampleResume()},
		{"empty resume", types.NewParsedResume()},
		{"nil resume", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := Generate(tt.resume, job)
			require.Len(t, qs, 5)
			for i, q := range qs {
				assert.NotEmpty(t, q.Text, "question %d", i)
				assert.NotEmpty(t, q.Category, "question %d", i)
			}
		})
	}
}

func TestGenerate_ResumeAwareTemplates(t *testing.T) {
	qs := Generate(sampleResume(), types.Job{Title: "Software Engineer"})
	require.Len(t, qs, 5)

	joined := make([]string, len(qs))
	for i, q := range qs {
		joined[i] = q.Text
	}
	all := strings.Join(joined, "\n")

	assert.Contains(t, all, "John")
	assert.Contains(t, all, "Python")
	assert.Contains(t, all, "Tech Corp")
	assert.Contains(t, all, "Inventory Tracker")
	assert.Contains(t, all, "Software Engineer")
}

func TestGenerate_AgnosticFallbacks(t *testing.T) {
	qs := Generate(types.NewParsedResume(), types.Job{Title: "Product Manager"})
	require.Len(t, qs, 5)

	all := strings.Join([]string{qs[0].Text, qs[1].Text, qs[2].Text, qs[3].Text}, "\n")
	assert.Contains(t, all, "technical skills")
	assert.Contains(t, all, "challenging situation")
	assert.Contains(t, all, "proud of")
}

func TestGenerate_BaseQuestionsOutrankRoleProbes(t *testing.T) {
	qs := Generate(sampleResume(), types.Job{Title: "Software Engineer"})
	require.Len(t, qs, 5)

	for _, q := range qs {
		assert.NotContains(t, q.Text, "debugging a problem", "role probes rank behind the base set")
	}
}

func TestGenerate_Categories(t *testing.T) {
	qs := Generate(sampleResume(), types.Job{Title: "Software Engineer"})
	require.Len(t, qs, 5)

	assert.Equal(t, types.CategoryGeneral, qs[0].Category)
	assert.Equal(t, types.CategoryTechnical, qs[1].Category)
	assert.Equal(t, types.CategoryBehavioral, qs[2].Category)
	assert.Equal(t, types.CategoryTechnical, qs[3].Category)
	assert.Equal(t, types.CategoryGeneral, qs[4].Category)
}

func TestRoleQuestions_TwoPerTrigger(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"software trigger", "Software Engineer", 2},
		{"data trigger", "Data Analyst", 2},
		{"management trigger", "Engineering Director", 2},
		{"no trigger", "Chef", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extra := roleQuestions(types.NewParsedResume(), types.Job{Title: tt.title})
			assert.Len(t, extra, tt.want)
		})
	}
}

func TestRoleQuestions_IndependentTriggers(t *testing.T) {
	// "Engineering Manager" carries both an engineer keyword and a
	// manager keyword, so both triggers contribute.
	extra := roleQuestions(types.NewParsedResume(), types.Job{Title: "Engineering Manager"})
	require.Len(t, extra, 4)

	all := make([]string, len(extra))
	for i, q := range extra {
		all[i] = q.Text
	}
	joined := strings.Join(all, "\n")
	assert.Contains(t, joined, "debugging a problem")
	assert.Contains(t, joined, "resolve a conflict")
}

func TestRoleQuestions_ResumeAwareDesignProbe(t *testing.T) {
	extra := roleQuestions(sampleResume(), types.Job{Title: "Backend Developer"})
	require.Len(t, extra, 2)
	assert.Contains(t, extra[1].Text, "React", "second skill anchors the design probe")

	extra = roleQuestions(types.NewParsedResume(), types.Job{Title: "Backend Developer"})
	require.Len(t, extra, 2)
	assert.Contains(t, extra[1].Text, "requirements you know will change")
}

func TestGenerate_EmptyJobTitle(t *testing.T) {
	qs := Generate(sampleResume(), types.Job{})
	require.Len(t, qs, 5)
	assert.Contains(t, qs[4].Text, "open position")
}
