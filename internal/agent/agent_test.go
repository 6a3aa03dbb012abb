package agent

import (
	"context"
	"errors"

	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
)

// llmFunc adapts a function to the TextGenerator interface for tests.
type llmFunc func(ctx context.Context, prompt string) (string, error)

func (f llmFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func llmReturning(response string) TextGenerator {
	return llmFunc(func(ctx context.Context, prompt string) (string, error) {
		return response, nil
	})
}

func llmFailing() TextGenerator {
	return llmFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("model unavailable")
	})
}

func nop() logger.ILogger {
	return logger.NewNopLogger()
}
