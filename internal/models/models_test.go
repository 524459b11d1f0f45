package models

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2500, 3},
		{-50, 1},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.level)
		}
	}
}

func TestSubjectValidity(t *testing.T) {
	for _, s := range AllSubjects() {
		if !s.IsValid() {
			t.Errorf("subject %s should be valid", s)
		}
		if s.Label() == "" {
			t.Errorf("subject %s should have a label", s)
		}
	}
	if Subject("ALCHEMY").IsValid() {
		t.Error("unknown subject should be invalid")
	}
}

func TestParseSubject(t *testing.T) {
	if s, ok := ParseSubject("GRAMMAR"); !ok || s != SubjectGrammar {
		t.Fatalf("expected grammar, got %s %v", s, ok)
	}
	if s, ok := ParseSubject("arithmetic"); !ok || s != SubjectArithmetic {
		t.Fatalf("expected case-insensitive parse, got %s %v", s, ok)
	}
	if _, ok := ParseSubject("ALCHEMY"); ok {
		t.Fatal("unknown subject should not parse")
	}
}

func TestPlanPrice(t *testing.T) {
	if got := PlanMonthly.Price(); got != 29.90 {
		t.Errorf("monthly price = %.2f, want 29.90", got)
	}
	if got := PlanYearly.Price(); got != 299.00 {
		t.Errorf("yearly price = %.2f, want 299.00", got)
	}
	if PlanMonthly.IsValid() != true || SubscriptionPlan("weekly").IsValid() {
		t.Error("plan validity mismatch")
	}
}

func TestQuestionIsCorrect(t *testing.T) {
	q := Question{CorrectAnswer: "Círculo"}

	tests := []struct {
		selected string
		want     bool
	}{
		{"Círculo", true},
		{" círculo ", true},
		{"CÍRCULO", true},
		{"Quadrado", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := q.IsCorrect(tt.selected); got != tt.want {
			t.Errorf("IsCorrect(%q) = %v, want %v", tt.selected, got, tt.want)
		}
	}
}

func TestProfileHasHelpers(t *testing.T) {
	p := UserProfile{
		UnlockedSubjects: []Subject{SubjectGrammar},
		MasteredLetters:  []string{"A", "B"},
	}

	if !p.HasUnlocked(SubjectGrammar) || p.HasUnlocked(SubjectLogic) {
		t.Error("HasUnlocked mismatch")
	}
	if !p.HasMastered("A") {
		t.Error("mastered letter not reported")
	}
	if p.HasMastered("Z") {
		t.Error("unmastered letter reported as mastered")
	}
}
