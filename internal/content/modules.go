package content

import (
	"felizeducation/internal/models"

	"github.com/samber/lo"
)

// freeModules is the curated base curriculum. These lessons are human
// authored and served without any provider call.
var freeModules = []models.Lesson{
	{
		ID:          "mod_1_vogais",
		Subject:     models.SubjectGrammar,
		Title:       "Módulo 1: As Vogais Mágicas",
		Description: "A base de todas as palavras! Vamos conhecer A, E, I, O, U.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "Qual destas é a letra A?", Options: []string{"A", "B", "C"}, CorrectAnswer: "A", Explanation: "A de Avião!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "Toque na Uva! 🍇", Options: []string{"🍇", "🍎", "🍌"}, CorrectAnswer: "🍇", Explanation: "U de Uva!", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "Que som a letra E faz?", Options: []string{"Éhhh", "Buh", "Sss"}, CorrectAnswer: "Éhhh", Explanation: "É de Elefante!", Type: models.QuestionMultipleChoice},
			{ID: "4", Text: "Quem começa com O?", Options: []string{"Ovo", "Pato", "Gato"}, CorrectAnswer: "Ovo", Explanation: "O de Ovo!", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_2_encontros",
		Subject:     models.SubjectGrammar,
		Title:       "Módulo 2: Encontros Vocálicos",
		Description: "Quando as vogais dão as mãos! AI, OI, AU.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "O cachorro faz...", Options: []string{"AU", "MIAU", "PIU"}, CorrectAnswer: "AU", Explanation: "A + U = AU!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "Quando eu me machuco eu digo...", Options: []string{"AI", "OI", "EI"}, CorrectAnswer: "AI", Explanation: "A + I = AI!", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "Para cumprimentar o amigo dizemos...", Options: []string{"OI", "UI", "AU"}, CorrectAnswer: "OI", Explanation: "O + I = OI!", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_3_consoantes_1",
		Subject:     models.SubjectGrammar,
		Title:       "Módulo 3: Primeiras Consoantes",
		Description: "B de Bola, C de Casa, D de Dado.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "Toque na BOLA ⚽", Options: []string{"⚽", "🏠", "🎲"}, CorrectAnswer: "⚽", Explanation: "B de Bola!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "Qual letra vem depois do B?", Options: []string{"C", "A", "H"}, CorrectAnswer: "C", Explanation: "A, B, C!", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "D de...", Options: []string{"Dado", "Sapo", "Pato"}, CorrectAnswer: "Dado", Explanation: "D de Dado!", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_4_numeros_1_5",
		Subject:     models.SubjectArithmetic,
		Title:       "Módulo 4: Contando até 5",
		Description: "Um, dois, três indiozinhos...",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "Quantos dedos temos em uma mão?", Options: []string{"5", "2", "10"}, CorrectAnswer: "5", Explanation: "Cinco dedos!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "Conte os patinhos: 🦆🦆", Options: []string{"2", "3", "1"}, CorrectAnswer: "2", Explanation: "Dois patinhos!", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "Qual número é este: 3", Options: []string{"Três", "Um", "Cinco"}, CorrectAnswer: "Três", Explanation: "Este é o número 3.", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_5_somas_simples",
		Subject:     models.SubjectArithmetic,
		Title:       "Módulo 5: Juntando Coisas",
		Description: "Introdução à soma com visual.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "🍎 + 🍎 = ?", Options: []string{"2", "1", "3"}, CorrectAnswer: "2", Explanation: "Uma maçã mais uma maçã são duas!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "Se tenho 1 bala e ganho mais 2...", Options: []string{"3", "2", "5"}, CorrectAnswer: "3", Explanation: "Fico com 3 balas!", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_6_formas",
		Subject:     models.SubjectGeometry,
		Title:       "Módulo 6: Formas e Cores",
		Description: "O mundo das formas geométricas.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "Qual forma parece uma Bola? ⚽", Options: []string{"Círculo", "Quadrado", "Triângulo"}, CorrectAnswer: "Círculo", Explanation: "A bola é um círculo!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "O quadrado tem quantos lados?", Options: []string{"4", "3", "1"}, CorrectAnswer: "4", Explanation: "Quatro lados iguais.", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "Qual cor é o Sol? ☀️", Options: []string{"Amarelo", "Azul", "Vermelho"}, CorrectAnswer: "Amarelo", Explanation: "O sol brilha amarelo!", Type: models.QuestionMultipleChoice},
		},
	},
	{
		ID:          "mod_7_logica_basica",
		Subject:     models.SubjectLogic,
		Title:       "Módulo 7: Lógica - O Intruso",
		Description: "Desenvolvendo o raciocínio lógico.",
		XPReward:    models.DefaultLessonXPReward,
		Questions: []models.Question{
			{ID: "1", Text: "Quem NÃO é animal?", Options: []string{"Mesa", "Gato", "Cachorro"}, CorrectAnswer: "Mesa", Explanation: "A mesa é um objeto!", Type: models.QuestionMultipleChoice},
			{ID: "2", Text: "O que usamos nos pés?", Options: []string{"Sapato", "Chapéu", "Luva"}, CorrectAnswer: "Sapato", Explanation: "Sapatos vão nos pés.", Type: models.QuestionMultipleChoice},
			{ID: "3", Text: "Dia e...", Options: []string{"Noite", "Escuro", "Lua"}, CorrectAnswer: "Noite", Explanation: "O contrário de dia é noite.", Type: models.QuestionMultipleChoice},
		},
	},
}

// FreeModules returns a copy of the curated curriculum.
func FreeModules() []models.Lesson {
	out := make([]models.Lesson, len(freeModules))
	copy(out, freeModules)
	return out
}

// modulesForSubject filters the curated curriculum by subject.
func modulesForSubject(subject models.Subject) []models.Lesson {
	return lo.Filter(freeModules, func(m models.Lesson, _ int) bool {
		return m.Subject == subject
	})
}
