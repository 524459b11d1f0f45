package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"felizeducation/internal/models"
)

// Defaults applied by the repair pass. Records written by older client
// versions miss fields or carry the wrong types; every read path funnels
// through RepairProfile so business logic only ever sees valid profiles.
const (
	defaultChildName = "Aventureiro"
	defaultChildAge  = 6
	avatarURLFormat  = "https://api.dicebear.com/7.x/fun-emoji/svg?seed=%s"
)

// DefaultAvatarURL returns the deterministic placeholder avatar for a name.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf(avatarURLFormat, strings.ReplaceAll(name, " ", ""))
}

// RepairProfile normalizes a profile loaded from storage. It is pure and
// idempotent: RepairProfile(RepairProfile(p)) == RepairProfile(p).
//
// Guarantees on the result:
//   - UnlockedSubjects contains only valid subjects, has no duplicates and
//     is never empty (defaults to the literacy subject)
//   - MasteredLetters is non-nil and has no duplicates or blank entries
//   - XP and Streak are non-negative, Age is within 1 to 17
//   - Level is derived from XP
//   - Name and Avatar are non-empty
//   - SubscriptionStatus and SubscriptionPlan are known values
func RepairProfile(p models.UserProfile) models.UserProfile {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = defaultChildName
	}
	if strings.TrimSpace(p.Avatar) == "" {
		p.Avatar = DefaultAvatarURL(p.Name)
	}

	if p.Age < 1 || p.Age > 17 {
		p.Age = defaultChildAge
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	p.Level = models.LevelForXP(p.XP)

	subjects := lo.Filter(p.UnlockedSubjects, func(s models.Subject, _ int) bool {
		return s.IsValid()
	})
	subjects = lo.Uniq(subjects)
	if len(subjects) == 0 {
		subjects = []models.Subject{models.SubjectGrammar}
	}
	p.UnlockedSubjects = subjects

	letters := lo.Filter(p.MasteredLetters, func(l string, _ int) bool {
		return strings.TrimSpace(l) != ""
	})
	p.MasteredLetters = lo.Uniq(letters)
	if p.MasteredLetters == nil {
		p.MasteredLetters = []string{}
	}

	switch p.SubscriptionStatus {
	case models.SubscriptionFree, models.SubscriptionActive,
		models.SubscriptionCanceled, models.SubscriptionPastDue:
	default:
		p.SubscriptionStatus = models.SubscriptionFree
	}
	if p.SubscriptionPlan != "" && !p.SubscriptionPlan.IsValid() {
		p.SubscriptionPlan = ""
	}

	return p
}

// decodeProfile turns a raw stored profile blob into a repaired profile.
// It first attempts a strict decode; legacy records with wrong field types
// fall back to a field-by-field coercing decode. The blob being corrupt
// JSON yields a fully-defaulted profile rather than an error.
func decodeProfile(raw json.RawMessage) models.UserProfile {
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err == nil {
		return RepairProfile(p)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return RepairProfile(models.UserProfile{})
	}
	return RepairProfile(coerceProfile(m))
}

// coerceProfile extracts a profile from an untyped map, tolerating numbers
// stored as strings, missing fields and wrongly-typed sequences.
func coerceProfile(m map[string]any) models.UserProfile {
	p := models.UserProfile{
		ID:         asString(m["id"]),
		Email:      asString(m["email"]),
		Name:       asString(m["name"]),
		ParentName: asString(m["parentName"]),
		Age:        asInt(m["age"]),
		Avatar:     asString(m["avatar"]),
		IsAdmin:    asBool(m["isAdmin"]),
		CreatedAt:  asTime(m["createdAt"]),
		LastLogin:  asTime(m["lastLogin"]),
		XP:         asInt(m["xp"]),
		Level:      asInt(m["level"]),
		Streak:     asInt(m["streak"]),
		IsPremium:  asBool(m["isPremium"]),

		SubscriptionStatus: models.SubscriptionStatus(asString(m["subscriptionStatus"])),
		SubscriptionPlan:   models.SubscriptionPlan(asString(m["subscriptionPlan"])),
	}

	for _, tag := range asStringSlice(m["unlockedSubjects"]) {
		if s, ok := models.ParseSubject(tag); ok {
			p.UnlockedSubjects = append(p.UnlockedSubjects, s)
		}
	}
	p.MasteredLetters = asStringSlice(m["masteredLetters"])

	if t := asTime(m["subscriptionRenewsAt"]); !t.IsZero() {
		p.SubscriptionRenewsAt = &t
	}

	return p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%f", &f); err == nil {
			return int(f)
		}
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
