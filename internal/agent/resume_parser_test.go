package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeParserParsesProfile(t *testing.T) {
	p := NewResumeParser(llmReturning(`{
		"name": "Jane Candidate",
		"email": "jane@example.com",
		"phone": "+15550100",
		"experience": "5 years",
		"skills": ["React", "Node.js"],
		"education": "BSc Computer Science",
		"current_position": "null"
	}`), nop())

	profile := p.Parse(context.Background(), "resume text")

	assert.Equal(t, "Jane Candidate", profile.Name)
	assert.Equal(t, []string{"React", "Node.js"}, profile.Skills)
	assert.Empty(t, profile.CurrentPosition) // literal "null" means absent
	assert.Empty(t, profile.MissingFields)
}

func TestResumeParserReportsMissingFields(t *testing.T) {
	p := NewResumeParser(llmReturning(`{"name": "Jane Candidate"}`), nop())

	profile := p.Parse(context.Background(), "resume text")

	assert.ElementsMatch(t, []string{"email", "phone"}, profile.MissingFields)
}

func TestResumeParserFallbackOnError(t *testing.T) {
	p := NewResumeParser(llmFailing(), nop())

	profile := p.Parse(context.Background(), "resume text")

	assert.Empty(t, profile.Name)
	assert.ElementsMatch(t, []string{"name", "email", "phone"}, profile.MissingFields)
}

func TestResumeParserFallbackOnInvalidJSON(t *testing.T) {
	p := NewResumeParser(llmReturning("I could not parse that resume, sorry!"), nop())

	profile := p.Parse(context.Background(), "resume text")

	assert.ElementsMatch(t, []string{"name", "email", "phone"}, profile.MissingFields)
}
