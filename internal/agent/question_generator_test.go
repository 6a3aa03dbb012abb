package agent

import (
	"context"
	"testing"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestQuestionGeneratorParsesResponse(t *testing.T) {
	g := NewQuestionGenerator(llmReturning("```json\n"+`{
		"question": "Explain the React reconciliation algorithm.",
		"difficulty": "hard",
		"time_limit": 999,
		"category": "Frontend",
		"expected_answer_length": "detailed",
		"evaluation_criteria": ["Accuracy", "Depth"]
	}`+"\n```"), nop())

	spec := g.Generate(context.Background(), model.DifficultyHard, 5, ResumeProfile{}, nil)

	assert.Equal(t, 5, spec.QuestionNumber)
	assert.Equal(t, "Explain the React reconciliation algorithm.", spec.Question)
	assert.Equal(t, model.DifficultyHard, spec.Difficulty)
	// The answer window is fixed per tier; the model cannot stretch it.
	assert.Equal(t, 120, spec.TimeLimit)
	assert.Equal(t, "Frontend", spec.Category)
	assert.Equal(t, []string{"Accuracy", "Depth"}, spec.EvaluationCriteria)
}

func TestQuestionGeneratorFallbackOnError(t *testing.T) {
	g := NewQuestionGenerator(llmFailing(), nop())

	spec := g.Generate(context.Background(), model.DifficultyEasy, 1, ResumeProfile{}, nil)

	assert.Equal(t, 1, spec.QuestionNumber)
	assert.NotEmpty(t, spec.Question)
	assert.Equal(t, model.DifficultyEasy, spec.Difficulty)
	assert.Equal(t, 20, spec.TimeLimit)
	assert.NotEmpty(t, spec.EvaluationCriteria)
}

func TestQuestionGeneratorFallbackOnMissingQuestion(t *testing.T) {
	g := NewQuestionGenerator(llmReturning(`{"category": "Backend"}`), nop())

	spec := g.Generate(context.Background(), model.DifficultyMedium, 3, ResumeProfile{}, nil)

	assert.NotEmpty(t, spec.Question)
	assert.Equal(t, 60, spec.TimeLimit)
}

func TestDifficultyTiers(t *testing.T) {
	wantDifficulties := map[int]string{
		1: model.DifficultyEasy, 2: model.DifficultyEasy,
		3: model.DifficultyMedium, 4: model.DifficultyMedium,
		5: model.DifficultyHard, 6: model.DifficultyHard,
	}
	for number, want := range wantDifficulties {
		assert.Equal(t, want, model.DifficultyForNumber(number), "question %d", number)
	}

	assert.Equal(t, 20, model.TimeLimitForDifficulty(model.DifficultyEasy))
	assert.Equal(t, 60, model.TimeLimitForDifficulty(model.DifficultyMedium))
	assert.Equal(t, 120, model.TimeLimitForDifficulty(model.DifficultyHard))
}
