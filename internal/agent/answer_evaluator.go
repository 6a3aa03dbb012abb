package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/tidwall/gjson"
)

type AnswerEvaluator struct {
	llm    TextGenerator
	logger logger.ILogger
}

func NewAnswerEvaluator(llm TextGenerator, logger logger.ILogger) *AnswerEvaluator {
	return &AnswerEvaluator{llm: llm, logger: logger}
}

// Evaluate scores an answer against its question. It never fails: on any
// collaborator error the heuristic fallback score is returned so the
// interview can proceed.
func (e *AnswerEvaluator) Evaluate(ctx context.Context, question QuestionSpec, answerText string, timeTaken int, profile ResumeProfile) EvaluationResult {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	prompt := e.buildPrompt(question, answerText, profile)

	text, err := e.llm.GenerateText(ctx, prompt)
	if err != nil {
		e.logger.Warn("answer_evaluator", "AI evaluation failed, using heuristic fallback", map[string]interface{}{
			"question_number": question.QuestionNumber,
			"error":           err.Error(),
		})
		return e.fallback(answerText, timeTaken, question.TimeLimit)
	}

	cleaned := cleanJSONResponse(text)
	if !gjson.Get(cleaned, "score").Exists() {
		e.logger.Warn("answer_evaluator", "AI response missing score, using heuristic fallback", map[string]interface{}{
			"question_number": question.QuestionNumber,
		})
		return e.fallback(answerText, timeTaken, question.TimeLimit)
	}

	result := EvaluationResult{
		Score:             clampScore(gjson.Get(cleaned, "score").Float()),
		Feedback:          gjson.Get(cleaned, "feedback").String(),
		TechnicalAccuracy: clampScore(gjson.Get(cleaned, "technical_accuracy").Float()),
		Communication:     clampScore(gjson.Get(cleaned, "communication").Float()),
		Depth:             clampScore(gjson.Get(cleaned, "depth").Float()),
	}
	for _, s := range gjson.Get(cleaned, "strengths").Array() {
		result.Strengths = append(result.Strengths, s.String())
	}
	for _, s := range gjson.Get(cleaned, "improvements").Array() {
		result.Improvements = append(result.Improvements, s.String())
	}
	if result.Feedback == "" {
		result.Feedback = "Answer evaluated."
	}
	return result
}

func (e *AnswerEvaluator) buildPrompt(question QuestionSpec, answerText string, profile ResumeProfile) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating a Full Stack Developer candidate's answer.

Question Details:
- Question: %s
- Difficulty: %s
- Category: %s
- Expected Answer Length: %s
- Evaluation Criteria: %s

Candidate's Answer: "%s"

Candidate Background:
- Experience: %s
- Skills: %s

Evaluate this answer and provide:
1. A score from 0-10 (10 being perfect)
2. Brief feedback explaining the score
3. What was good about the answer
4. What could be improved

Consider technical accuracy, depth of understanding, clarity of explanation, relevance to the question, and whether the answer is appropriate for the difficulty level.

Return ONLY a JSON object with this exact structure:
{
    "score": 7,
    "feedback": "Brief overall feedback",
    "strengths": ["strength1", "strength2"],
    "improvements": ["improvement1", "improvement2"],
    "technical_accuracy": 8,
    "communication": 7,
    "depth": 6
}`,
		question.Question, question.Difficulty, question.Category,
		question.ExpectedAnswerLength, strings.Join(question.EvaluationCriteria, ", "),
		answerText,
		orUnknown(profile.Experience), orUnknown(strings.Join(profile.Skills, ", ")))
}

// fallback scores an answer without AI: base 5, +2 for a substantive answer
// (over 50 characters), +1 for finishing within the time limit, capped at 10.
func (e *AnswerEvaluator) fallback(answerText string, timeTaken, timeLimit int) EvaluationResult {
	score := 5.0
	if len(answerText) > 50 {
		score += 2
	}
	if timeTaken <= timeLimit {
		score++
	}
	if score > 10 {
		score = 10
	}
	return EvaluationResult{
		Score:             score,
		Feedback:          "Answer received but could not be automatically evaluated.",
		Strengths:         []string{"Response provided"},
		Improvements:      []string{"Could not analyze - please review manually"},
		TechnicalAccuracy: score,
		Communication:     score,
		Depth:             score,
	}
}
