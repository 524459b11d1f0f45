package content

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/llm"
	"felizeducation/internal/models"
)

const (
	defaultProviderTimeout = 20 * time.Second
	generationMaxTokens    = 2048
	generationTemperature  = 0.7
)

// Resolver produces a playable lesson for any request. It never returns
// an error: every failure path degrades to curated or hardcoded content.
type Resolver struct {
	provider llm.Provider
	timeout  time.Duration
	log      *logrus.Logger
}

// NewResolver creates a Resolver. provider may be nil, in which case only
// curated content is served.
func NewResolver(provider llm.Provider, timeout time.Duration, log *logrus.Logger) *Resolver {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resolver{provider: provider, timeout: timeout, log: log}
}

// ResolveLesson picks content in strict priority order. A "Letra X"
// topic always wins. Non-premium profiles and profiles without a usable
// provider get curated modules. Premium profiles get a generated lesson;
// a provider failure degrades to the deterministic per-subject fallback,
// not a random curated module.
func (r *Resolver) ResolveLesson(ctx context.Context, subject models.Subject, age int, isPremium bool, topic string) models.Lesson {
	if letter, ok := letterFromTopic(topic); ok {
		return LetterLesson(letter)
	}

	if r.provider == nil || !isPremium {
		return r.curatedLesson(subject)
	}

	lesson, err := r.generateLesson(ctx, subject, age, topic)
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"subject": subject,
			"topic":   topic,
		}).Warn("lesson generation failed, using fallback")
		return fallbackLesson(subject)
	}
	return lesson
}

// curatedLesson serves a random curated module for the subject, or the
// hardcoded fallback family when none exists.
func (r *Resolver) curatedLesson(subject models.Subject) models.Lesson {
	modules := modulesForSubject(subject)
	if len(modules) > 0 {
		return modules[rand.Intn(len(modules))]
	}
	return fallbackLesson(subject)
}

// generatedLesson is the wire shape of a provider response.
type generatedLesson struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}

func (r *Resolver) generateLesson(ctx context.Context, subject models.Subject, age int, topic string) (models.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.provider.Generate(ctx, llm.Request{
		Prompt:      lessonPrompt(subject, age, topic),
		Schema:      lessonSchema(),
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return models.Lesson{}, err
	}

	cleaned := sanitizeJSON(string(resp.Content))

	var parsed generatedLesson
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.Lesson{}, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	lesson, ok := shapeLesson(parsed, subject)
	if !ok {
		return models.Lesson{}, &llm.ErrInvalidResponse{Content: resp.Content}
	}
	return lesson, nil
}

// shapeLesson validates and normalizes a generated lesson. Questions with
// no options or whose answer is not among the options are dropped; a
// lesson with no surviving questions is rejected.
func shapeLesson(g generatedLesson, subject models.Subject) (models.Lesson, bool) {
	if g.Title == "" || len(g.Questions) == 0 {
		return models.Lesson{}, false
	}

	questions := make([]models.Question, 0, len(g.Questions))
	for i, q := range g.Questions {
		if q.Text == "" || len(q.Options) == 0 {
			continue
		}
		valid := false
		for _, opt := range q.Options {
			if q.IsCorrect(opt) {
				valid = true
				break
			}
		}
		if !valid {
			continue
		}
		if q.ID == "" {
			q.ID = "q" + strconv.Itoa(i+1)
		}
		if q.Type == "" {
			q.Type = models.QuestionMultipleChoice
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return models.Lesson{}, false
	}

	return models.Lesson{
		ID:          "generated_" + string(subject) + "_" + time.Now().UTC().Format("20060102150405"),
		Subject:     subject,
		Title:       g.Title,
		Description: g.Description,
		Questions:   questions,
		XPReward:    models.DefaultLessonXPReward,
	}, true
}
