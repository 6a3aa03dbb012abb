package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/tidwall/gjson"
)

var difficultyComplexity = map[string]string{
	model.DifficultyEasy:   "Basic concepts and fundamental knowledge",
	model.DifficultyMedium: "Intermediate problem-solving and practical application",
	model.DifficultyHard:   "Advanced concepts, system design, and complex problem-solving",
}

var fallbackQuestions = map[string]string{
	model.DifficultyEasy:   "What is the difference between React functional and class components?",
	model.DifficultyMedium: "How would you implement state management in a React application?",
	model.DifficultyHard:   "Design a scalable architecture for a real-time chat application using React and Node.js.",
}

type QuestionGenerator struct {
	llm    TextGenerator
	logger logger.ILogger
}

func NewQuestionGenerator(llm TextGenerator, logger logger.ILogger) *QuestionGenerator {
	return &QuestionGenerator{llm: llm, logger: logger}
}

// Generate produces a question for the given tier. previousQuestions carries
// the texts already asked in this interview so the model avoids repetition.
// Generation never fails: any collaborator error resolves to a static
// fallback of the same difficulty.
func (g *QuestionGenerator) Generate(ctx context.Context, difficulty string, questionNumber int, profile ResumeProfile, previousQuestions []string) QuestionSpec {
	timeLimit := model.TimeLimitForDifficulty(difficulty)

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	prompt := g.buildPrompt(difficulty, questionNumber, timeLimit, profile, previousQuestions)

	text, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Warn("question_generator", "AI generation failed, using fallback question", map[string]interface{}{
			"question_number": questionNumber,
			"difficulty":      difficulty,
			"error":           err.Error(),
		})
		return g.fallback(difficulty, questionNumber, timeLimit)
	}

	cleaned := cleanJSONResponse(text)
	question := gjson.Get(cleaned, "question").String()
	if question == "" {
		g.logger.Warn("question_generator", "AI response missing question text, using fallback", map[string]interface{}{
			"question_number": questionNumber,
		})
		return g.fallback(difficulty, questionNumber, timeLimit)
	}

	spec := QuestionSpec{
		QuestionNumber:       questionNumber,
		Question:             question,
		Difficulty:           difficulty,
		TimeLimit:            timeLimit, // fixed per tier regardless of what the model says
		Category:             gjson.Get(cleaned, "category").String(),
		ExpectedAnswerLength: gjson.Get(cleaned, "expected_answer_length").String(),
	}
	for _, c := range gjson.Get(cleaned, "evaluation_criteria").Array() {
		spec.EvaluationCriteria = append(spec.EvaluationCriteria, c.String())
	}
	if spec.Category == "" {
		spec.Category = "General"
	}
	return spec
}

func (g *QuestionGenerator) buildPrompt(difficulty string, questionNumber, timeLimit int, profile ResumeProfile, previousQuestions []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert technical interviewer for a Full Stack Developer position (React/Node.js).

Generate Question #%d with %s difficulty level.

Requirements:
- Difficulty: %s - %s
- Time Limit: %d seconds
- Must be relevant to Full Stack Development (React/Node.js)
- Consider the candidate's background from their resume
- Avoid repeating previous questions

Candidate Resume Summary:
- Name: %s
- Experience: %s
- Skills: %s
- Projects: %s
`,
		questionNumber, strings.ToUpper(difficulty),
		strings.ToUpper(difficulty), difficultyComplexity[difficulty],
		timeLimit,
		orUnknown(profile.Name), orUnknown(profile.Experience),
		orUnknown(strings.Join(profile.Skills, ", ")), orUnknown(profile.Projects))

	if len(previousQuestions) > 0 {
		b.WriteString("\nPrevious Questions Asked:\n")
		for _, q := range previousQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	fmt.Fprintf(&b, `
The question should be clear, specific, and answerable within the time limit.

Return ONLY a JSON object with this exact structure:
{
    "question": "Your question here",
    "difficulty": "%s",
    "time_limit": %d,
    "category": "Frontend|Backend|Fullstack|General",
    "expected_answer_length": "brief|detailed",
    "evaluation_criteria": ["criterion1", "criterion2", "criterion3"]
}`, difficulty, timeLimit)

	return b.String()
}

func (g *QuestionGenerator) fallback(difficulty string, questionNumber, timeLimit int) QuestionSpec {
	return QuestionSpec{
		QuestionNumber:       questionNumber,
		Question:             fallbackQuestions[difficulty],
		Difficulty:           difficulty,
		TimeLimit:            timeLimit,
		Category:             "Fullstack",
		ExpectedAnswerLength: "detailed",
		EvaluationCriteria:   []string{"Technical accuracy", "Clear explanation", "Practical understanding"},
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
