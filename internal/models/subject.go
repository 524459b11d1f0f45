package models

import "strings"

// Subject identifies one of the seven curriculum areas, following the
// classical trivium/quadrivium split used by the lesson map.
type Subject string

const (
	// Trivium
	SubjectGrammar  Subject = "GRAMMAR" // literacy / alfabetização
	SubjectLogic    Subject = "LOGIC"
	SubjectRhetoric Subject = "RHETORIC"
	// Quadrivium
	SubjectArithmetic Subject = "ARITHMETIC"
	SubjectGeometry   Subject = "GEOMETRY"
	SubjectMusic      Subject = "MUSIC"
	SubjectAstronomy  Subject = "ASTRONOMY"
)

// AllSubjects returns every subject in curriculum order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectGrammar,
		SubjectLogic,
		SubjectRhetoric,
		SubjectArithmetic,
		SubjectGeometry,
		SubjectMusic,
		SubjectAstronomy,
	}
}

// IsValid reports whether s is a known subject tag.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectGrammar, SubjectLogic, SubjectRhetoric,
		SubjectArithmetic, SubjectGeometry, SubjectMusic, SubjectAstronomy:
		return true
	}
	return false
}

// Label returns the display name shown on the lesson map (pt-BR).
func (s Subject) Label() string {
	switch s {
	case SubjectGrammar:
		return "Alfabetização Mágica"
	case SubjectLogic:
		return "Lógica"
	case SubjectRhetoric:
		return "Retórica"
	case SubjectArithmetic:
		return "Aritmética"
	case SubjectGeometry:
		return "Geometria"
	case SubjectMusic:
		return "Música"
	case SubjectAstronomy:
		return "Astronomia"
	}
	return string(s)
}

// ParseSubject converts a subject tag into a Subject, reporting whether
// the tag is known. Tags are matched case-insensitively.
func ParseSubject(tag string) (Subject, bool) {
	s := Subject(strings.ToUpper(strings.TrimSpace(tag)))
	return s, s.IsValid()
}
