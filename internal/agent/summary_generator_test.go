package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []QuestionAnswerRecord {
	score := 7.0
	return []QuestionAnswerRecord{
		{QuestionNumber: 1, Question: "Q1", Difficulty: "easy", Answer: "A1", Score: &score},
		{QuestionNumber: 2, Question: "Q2", Difficulty: "easy", Answer: "A2", Score: &score},
	}
}

func TestSummaryGeneratorForcesAggregatorScore(t *testing.T) {
	s := NewSummaryGenerator(llmReturning(`{
		"overall_score": 9.9,
		"recommendation": "Move Forward",
		"summary": "Strong candidate.",
		"strengths": ["depth"],
		"weaknesses": ["pace"]
	}`), nop())

	result := s.Generate(context.Background(), ResumeProfile{}, sampleRecords(), 6.5)

	// The model's overall_score is ignored in favor of the computed mean.
	assert.Equal(t, 6.5, result.OverallScore)
	assert.Equal(t, "Move Forward", result.Recommendation)
	assert.Equal(t, "Strong candidate.", result.Summary)
}

func TestSummaryGeneratorFallbackOnError(t *testing.T) {
	s := NewSummaryGenerator(llmFailing(), nop())

	result := s.Generate(context.Background(), ResumeProfile{}, sampleRecords(), 6.5)

	assert.Equal(t, 6.5, result.OverallScore)
	assert.Equal(t, "Consider", result.Recommendation)
	assert.Contains(t, result.Summary, "2/6 questions")
	assert.Contains(t, result.Summary, "6.5/10")
}

func TestSummaryGeneratorFillsMissingRecommendation(t *testing.T) {
	s := NewSummaryGenerator(llmReturning(`{"summary": "Fine."}`), nop())

	result := s.Generate(context.Background(), ResumeProfile{}, sampleRecords(), 8.0)

	assert.Equal(t, "Move Forward", result.Recommendation)
}

func TestRecommendationThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "Move Forward"},
		{7, "Move Forward"},
		{6.99, "Consider"},
		{5, "Consider"},
		{4.99, "Reject"},
		{0, "Reject"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, recommendationForScore(tt.score), "score %.2f", tt.score)
	}
}
