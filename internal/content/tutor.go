package content

import (
	"context"
	"strings"

	"felizeducation/internal/llm"
)

const (
	tutorOfflineHint = "Hoot! Olhe as imagens e tente contar com os dedinhos! (Modo Offline)"
	tutorEmptyHint   = "Pense com carinho!"
	tutorFailureHint = "Hoot! Você consegue!"
	tutorMaxTokens   = 256
	tutorTemperature = 0.5
)

// TutorHelp returns a short, age-appropriate hint for a question. It
// never fails: without a provider or on any error it returns a canned
// encouragement.
func (r *Resolver) TutorHelp(ctx context.Context, question string, age int) string {
	if r.provider == nil {
		return tutorOfflineHint
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      tutorSystemPrompt,
		Prompt:      tutorPrompt(question, age),
		MaxTokens:   tutorMaxTokens,
		Temperature: tutorTemperature,
	})
	if err != nil {
		r.log.WithError(err).Debug("tutor help failed, using canned hint")
		return tutorFailureHint
	}

	hint := strings.TrimSpace(string(resp.Content))
	if hint == "" {
		return tutorEmptyHint
	}
	return hint
}
