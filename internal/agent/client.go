package agent

import (
	"context"
	"strings"
	"time"
)

// TextGenerator is the single dependency every agent has on the outside
// world. Production wires the Gemini service; tests substitute deterministic
// fakes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// callTimeout bounds one AI round trip. Expiry is a collaborator failure and
// resolves to the agent's fallback, never to an error for the caller.
const callTimeout = 30 * time.Second

// cleanJSONResponse strips the markdown code fences models like to wrap JSON
// in.
func cleanJSONResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
