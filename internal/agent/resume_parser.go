package agent

import (
	"context"
	"fmt"

	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/tidwall/gjson"
)

var requiredProfileFields = []string{"name", "email", "phone"}

type ResumeParser struct {
	llm    TextGenerator
	logger logger.ILogger
}

func NewResumeParser(llm TextGenerator, logger logger.ILogger) *ResumeParser {
	return &ResumeParser{llm: llm, logger: logger}
}

// Parse extracts a structured profile from resume text. On any collaborator
// failure it returns an empty profile with all required fields reported
// missing so the candidate is asked to fill them in manually.
func (p *ResumeParser) Parse(ctx context.Context, resumeText string) ResumeProfile {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Extract information from the following resume text. Focus on accuracy and completeness.

Resume Text:
%s

Return ONLY a JSON object with this exact structure:
{
    "name": "Full Name or null",
    "email": "email@example.com or null",
    "phone": "+1234567890 or null",
    "experience": "X years or entry-level or null",
    "skills": ["skill1", "skill2"] or [],
    "education": "Degree details or null",
    "projects": "Project descriptions or null",
    "current_position": "Job title or null"
}`, resumeText)

	text, err := p.llm.GenerateText(ctx, prompt)
	if err != nil {
		p.logger.Warn("resume_parser", "AI resume parsing failed, manual entry required", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackProfile()
	}

	cleaned := cleanJSONResponse(text)
	if !gjson.Valid(cleaned) {
		p.logger.Warn("resume_parser", "AI resume parse returned invalid JSON, manual entry required", nil)
		return fallbackProfile()
	}

	profile := ResumeProfile{
		Name:            nullableString(cleaned, "name"),
		Email:           nullableString(cleaned, "email"),
		Phone:           nullableString(cleaned, "phone"),
		Experience:      nullableString(cleaned, "experience"),
		Education:       nullableString(cleaned, "education"),
		Projects:        nullableString(cleaned, "projects"),
		CurrentPosition: nullableString(cleaned, "current_position"),
	}
	for _, s := range gjson.Get(cleaned, "skills").Array() {
		profile.Skills = append(profile.Skills, s.String())
	}

	profile.MissingFields = missingProfileFields(profile)
	return profile
}

func missingProfileFields(profile ResumeProfile) []string {
	missing := []string{}
	values := map[string]string{
		"name":  profile.Name,
		"email": profile.Email,
		"phone": profile.Phone,
	}
	for _, field := range requiredProfileFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func fallbackProfile() ResumeProfile {
	return ResumeProfile{
		Skills:        []string{},
		MissingFields: append([]string{}, requiredProfileFields...),
	}
}

// nullableString reads a field that models sometimes return as the literal
// string "null".
func nullableString(json, path string) string {
	v := gjson.Get(json, path).String()
	if v == "null" {
		return ""
	}
	return v
}
