package content

import "felizeducation/internal/models"

// fallbackLesson returns a hardcoded lesson for the subject. This is the
// last line of defense: the resolver must always hand back something
// playable, even with no curated module and no provider.
func fallbackLesson(subject models.Subject) models.Lesson {
	switch subject {
	case models.SubjectArithmetic:
		return models.Lesson{
			ID:          "fallback_arithmetic",
			Subject:     subject,
			Title:       "Matemática Divertida",
			Description: "Vamos contar!",
			XPReward:    models.DefaultLessonXPReward,
			Questions: []models.Question{
				{ID: "f1", Text: "Quanto é 1 + 1?", Options: []string{"2", "3", "4"}, CorrectAnswer: "2", Explanation: "Um mais um é dois.", Type: models.QuestionMultipleChoice},
				{ID: "f2", Text: "Conte os dedos: ✌️", Options: []string{"2", "5", "10"}, CorrectAnswer: "2", Explanation: "Dois dedos levantados.", Type: models.QuestionMultipleChoice},
				{ID: "f3", Text: "Qual número vem depois do 2?", Options: []string{"3", "1", "0"}, CorrectAnswer: "3", Explanation: "1, 2, 3!", Type: models.QuestionMultipleChoice},
			},
		}
	case models.SubjectLogic:
		return models.Lesson{
			ID:          "fallback_logic",
			Subject:     subject,
			Title:       "Lógica Rápida",
			Description: "Pense bem!",
			XPReward:    models.DefaultLessonXPReward,
			Questions: []models.Question{
				{ID: "l1", Text: "O que o gato bebe?", Options: []string{"Leite", "Pedra", "Vento"}, CorrectAnswer: "Leite", Explanation: "Gatinhos gostam de leite.", Type: models.QuestionMultipleChoice},
				{ID: "l2", Text: "O gelo é...", Options: []string{"Frio", "Quente", "Morno"}, CorrectAnswer: "Frio", Explanation: "Brrr! Gelo é gelado.", Type: models.QuestionMultipleChoice},
			},
		}
	case models.SubjectGeometry:
		return models.Lesson{
			ID:          "fallback_geometry",
			Subject:     subject,
			Title:       "Formas ao Redor",
			Description: "Olhe as formas do mundo!",
			XPReward:    models.DefaultLessonXPReward,
			Questions: []models.Question{
				{ID: "s1", Text: "A roda do carro é um...", Options: []string{"Círculo", "Triângulo", "Quadrado"}, CorrectAnswer: "Círculo", Explanation: "Rodas são redondas.", Type: models.QuestionMultipleChoice},
				{ID: "s2", Text: "Quantos lados tem o triângulo?", Options: []string{"3", "4", "5"}, CorrectAnswer: "3", Explanation: "Tri quer dizer três.", Type: models.QuestionMultipleChoice},
			},
		}
	default:
		return models.Lesson{
			ID:          "fallback_general",
			Subject:     subject,
			Title:       "Descobertas Gerais",
			Description: "Aprendendo sobre o mundo.",
			XPReward:    models.DefaultLessonXPReward,
			Questions: []models.Question{
				{ID: "g1", Text: "Qual é a cor da banana?", Options: []string{"Amarela", "Azul", "Rosa"}, CorrectAnswer: "Amarela", Explanation: "Bananas maduras são amarelas.", Type: models.QuestionMultipleChoice},
				{ID: "g2", Text: "O peixe vive...", Options: []string{"Na água", "Na árvore", "No céu"}, CorrectAnswer: "Na água", Explanation: "Peixes nadam na água.", Type: models.QuestionMultipleChoice},
			},
		}
	}
}
