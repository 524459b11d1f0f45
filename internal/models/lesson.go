package models

import "strings"

// QuestionType tags the interaction style of a question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
)

// Question is a single quiz item. CorrectAnswer is always one of Options.
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Type          QuestionType `json:"type"`
}

// IsCorrect grades a selected option: trimmed, case-insensitive equality
// with the correct answer.
func (q *Question) IsCorrect(selected string) bool {
	return strings.EqualFold(
		strings.TrimSpace(selected),
		strings.TrimSpace(q.CorrectAnswer),
	)
}

// DefaultLessonXPReward is the XP granted for finishing a lesson.
const DefaultLessonXPReward = 50

// Lesson is a playable quiz. Lessons are transient: they are owned by the
// active session in the client and never persisted.
type Lesson struct {
	ID          string     `json:"id"`
	Subject     Subject    `json:"subject"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	XPReward    int        `json:"xpReward"`
}
