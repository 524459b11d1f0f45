package content

import (
	"fmt"
	"math/rand"
	"strings"

	"felizeducation/internal/models"
)

const letterTopicPrefix = "Letra "

// letterFromTopic extracts the letter from a "Letra X" topic. Returns
// false when the topic is not a letter request or the letter is unknown.
func letterFromTopic(topic string) (string, bool) {
	if !strings.HasPrefix(topic, letterTopicPrefix) {
		return "", false
	}
	letter := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(topic, letterTopicPrefix)))
	if _, ok := alphabetDB[letter]; !ok {
		return "", false
	}
	return letter, true
}

// LetterLesson builds the three-question phonics lesson for a letter.
// Distractors are drawn at random from the rest of the alphabet and the
// options of every question are shuffled.
func LetterLesson(letter string) models.Lesson {
	data, ok := alphabetDB[letter]
	if !ok {
		data = alphabetDB["A"]
		letter = "A"
	}

	distractors := pickDistractors(letter, 3)
	d0 := alphabetDB[distractors[0]]
	d1 := alphabetDB[distractors[1]]

	return models.Lesson{
		ID:          "letter_" + letter,
		Subject:     models.SubjectGrammar,
		Title:       "A Letra " + letter,
		Description: fmt.Sprintf("Aprendendo o som e a forma do %s.", letter),
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{
				ID:            "1",
				Text:          fmt.Sprintf("Esta é a letra %s. Toque nela!", letter),
				Options:       shuffled([]string{letter, distractors[0], distractors[1]}),
				CorrectAnswer: letter,
				Explanation:   "Muito bem! " + data.PhoneticText,
				Type:          models.QuestionMultipleChoice,
			},
			{
				ID:            "2",
				Text:          fmt.Sprintf("%s de %s! %s. O que começa com %s?", letter, data.Word, data.Emoji, letter),
				Options:       shuffled([]string{data.Emoji, d0.Emoji, d1.Emoji}),
				CorrectAnswer: data.Emoji,
				Explanation:   fmt.Sprintf("%s de %s.", letter, data.Word),
				Type:          models.QuestionMultipleChoice,
			},
			{
				ID:            "3",
				Text:          fmt.Sprintf("Qual letra tem som de %q?", data.Word),
				Options:       shuffled([]string{distractors[2], letter, distractors[0]}),
				CorrectAnswer: letter,
				Explanation:   fmt.Sprintf("Isso! O %s faz esse som.", letter),
				Type:          models.QuestionMultipleChoice,
			},
		},
	}
}

// pickDistractors returns n random letters different from the given one.
func pickDistractors(letter string, n int) []string {
	pool := make([]string, 0, len(alphabetOrder)-1)
	for _, l := range alphabetOrder {
		if l != letter {
			pool = append(pool, l)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}

func shuffled(options []string) []string {
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
