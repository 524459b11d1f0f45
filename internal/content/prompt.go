package content

import (
	"fmt"

	"felizeducation/internal/llm"
	"felizeducation/internal/models"
)

const tutorSystemPrompt = "Você é uma coruja tutora gentil em um aplicativo educativo infantil brasileiro."

// lessonPrompt builds the generation prompt for a personalized lesson.
func lessonPrompt(subject models.Subject, age int, topic string) string {
	if topic == "" {
		topic = "Core Concepts"
	}
	return fmt.Sprintf(
		"Create a fun, educational mini-lesson for a child aged %d years old.\n"+
			"Subject: %s. Topic: %s.\n"+
			"Language: Portuguese (Brazil).\n"+
			"Create 4 simple multiple choice questions.\n"+
			"Return pure JSON with this schema.",
		age, subject, topic,
	)
}

// tutorPrompt asks for a one-sentence, age-appropriate hint.
func tutorPrompt(question string, age int) string {
	return fmt.Sprintf("Explique para criança de %d anos: %s. Responda em 1 frase curta com emoji.", age, question)
}

// lessonSchema is the JSON Schema every generated lesson must satisfy.
func lessonSchema() *llm.Schema {
	return &llm.Schema{
		Name: "lesson",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":            map[string]any{"type": "string"},
							"text":          map[string]any{"type": "string"},
							"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"correctAnswer": map[string]any{"type": "string"},
							"explanation":   map[string]any{"type": "string"},
							"type":          map[string]any{"type": "string"},
						},
						"required": []any{"text", "options", "correctAnswer"},
					},
				},
			},
			"required": []any{"title", "questions"},
		},
	}
}
