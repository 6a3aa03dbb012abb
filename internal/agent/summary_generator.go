package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/tidwall/gjson"
)

type SummaryGenerator struct {
	llm    TextGenerator
	logger logger.ILogger
}

func NewSummaryGenerator(llm TextGenerator, logger logger.ILogger) *SummaryGenerator {
	return &SummaryGenerator{llm: llm, logger: logger}
}

// Generate writes the final interview narrative. overallScore comes from the
// scoring aggregator and is always forced into the result; the model only
// contributes prose. Failures resolve to a templated narrative.
func (s *SummaryGenerator) Generate(ctx context.Context, candidate ResumeProfile, records []QuestionAnswerRecord, overallScore float64) SummaryResult {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	prompt := s.buildPrompt(candidate, records, overallScore)

	text, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("summary_generator", "AI summary failed, using templated narrative", map[string]interface{}{
			"error": err.Error(),
		})
		return s.fallback(records, overallScore)
	}

	cleaned := cleanJSONResponse(text)
	if !gjson.Get(cleaned, "summary").Exists() {
		s.logger.Warn("summary_generator", "AI response missing summary, using templated narrative", nil)
		return s.fallback(records, overallScore)
	}

	result := SummaryResult{
		OverallScore:        overallScore,
		Recommendation:      gjson.Get(cleaned, "recommendation").String(),
		Summary:             gjson.Get(cleaned, "summary").String(),
		TechnicalAssessment: gjson.Get(cleaned, "technical_assessment").String(),
		CommunicationSkills: gjson.Get(cleaned, "communication_skills").String(),
		NextSteps:           gjson.Get(cleaned, "next_steps").String(),
	}
	for _, v := range gjson.Get(cleaned, "strengths").Array() {
		result.Strengths = append(result.Strengths, v.String())
	}
	for _, v := range gjson.Get(cleaned, "weaknesses").Array() {
		result.Weaknesses = append(result.Weaknesses, v.String())
	}
	if result.Recommendation == "" {
		result.Recommendation = recommendationForScore(overallScore)
	}
	return result
}

func (s *SummaryGenerator) buildPrompt(candidate ResumeProfile, records []QuestionAnswerRecord, overallScore float64) string {
	var qa strings.Builder
	for _, r := range records {
		score := 0.0
		if r.Score != nil {
			score = *r.Score
		}
		fmt.Fprintf(&qa, "Q%d (%s): %.1f/10\n", r.QuestionNumber, r.Difficulty, score)
	}

	detail, _ := json.MarshalIndent(records, "", "  ")

	return fmt.Sprintf(`Generate a comprehensive interview summary for a Full Stack Developer candidate.

Candidate Information:
- Name: %s
- Experience: %s
- Skills: %s

Interview Performance:
%sOverall Score: %.2f/10

Question and Answer Details:
%s

Generate a professional summary that includes:
1. Overall performance assessment
2. Technical strengths identified
3. Areas for improvement
4. Recommendation (Move Forward/Consider/Reject)
5. Key highlights from the interview

Return ONLY a JSON object with this structure:
{
    "overall_score": %.2f,
    "recommendation": "Move Forward|Consider|Reject",
    "summary": "2-3 sentence overall assessment",
    "strengths": ["strength1", "strength2", "strength3"],
    "weaknesses": ["weakness1", "weakness2"],
    "technical_assessment": "Technical skills evaluation",
    "communication_skills": "Communication assessment",
    "next_steps": "Recommended next steps"
}`,
		orUnknown(candidate.Name), orUnknown(candidate.Experience),
		orUnknown(strings.Join(candidate.Skills, ", ")),
		qa.String(), overallScore, string(detail), overallScore)
}

func (s *SummaryGenerator) fallback(records []QuestionAnswerRecord, overallScore float64) SummaryResult {
	recommendation := recommendationForScore(overallScore)

	var reason string
	switch recommendation {
	case "Move Forward":
		reason = "Strong performance across technical questions."
	case "Consider":
		reason = "Moderate performance with some areas for improvement."
	default:
		reason = "Below expectations for the technical requirements."
	}

	return SummaryResult{
		OverallScore:   overallScore,
		Recommendation: recommendation,
		Summary: fmt.Sprintf("Candidate completed %d/%d questions with an average score of %.1f/10. %s",
			len(records), model.QuestionCount, overallScore, reason),
		Strengths:           []string{"Completed the interview"},
		Weaknesses:          []string{"Could not generate detailed analysis"},
		TechnicalAssessment: "Requires manual review",
		CommunicationSkills: "Requires manual review",
		NextSteps:           "Manual review recommended",
	}
}

func recommendationForScore(score float64) string {
	switch {
	case score >= 7:
		return "Move Forward"
	case score >= 5:
		return "Consider"
	default:
		return "Reject"
	}
}
