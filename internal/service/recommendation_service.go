package service

import (
	"fmt"

	"felizeducation/internal/models"
)

// LearningPath is the onboarding recommendation for a child's age.
type LearningPath struct {
	RecommendedStart models.Subject   `json:"recommendedStart"`
	Message          string           `json:"message"`
	InitialUnlocks   []models.Subject `json:"initialUnlocks"`
}

// RecommendLearningPath maps the child's age to a starting path:
// up to 5 literacy only, 6-7 literacy plus numeracy, 8 and up adds logic.
func RecommendLearningPath(age int) LearningPath {
	switch {
	case age <= 5:
		return LearningPath{
			RecommendedStart: models.SubjectGrammar,
			Message:          fmt.Sprintf("Para %d anos, vamos brincar com o ALFABETO! 🅰️🅱️ Jogos com letras grandes e emojis para ensinar os sons.", age),
			InitialUnlocks:   []models.Subject{models.SubjectGrammar},
		}
	case age <= 7:
		return LearningPath{
			RecommendedStart: models.SubjectArithmetic,
			Message:          "Fase de Alfabetização ativa! Vamos juntar as sílabas e introduzir os primeiros números (1, 2, 3...).",
			InitialUnlocks:   []models.Subject{models.SubjectGrammar, models.SubjectArithmetic},
		}
	default:
		return LearningPath{
			RecommendedStart: models.SubjectLogic,
			Message:          "Pronto para leitura, interpretação e desafios de Lógica! O currículo completo do Trivium está liberado.",
			InitialUnlocks:   []models.Subject{models.SubjectGrammar, models.SubjectArithmetic, models.SubjectLogic},
		}
	}
}
