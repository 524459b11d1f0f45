package models

import "time"

// SubscriptionStatus is the lifecycle state of a parent's subscription.
type SubscriptionStatus string

const (
	SubscriptionFree     SubscriptionStatus = "free"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// SubscriptionPlan is a paid plan tier. Empty means no plan.
type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
)

// Price returns the fixed charge for the plan in BRL.
func (p SubscriptionPlan) Price() float64 {
	if p == PlanYearly {
		return 299.00
	}
	return 29.90
}

// IsValid reports whether p is a known plan tier.
func (p SubscriptionPlan) IsValid() bool {
	return p == PlanMonthly || p == PlanYearly
}

// XPPerLevel is the amount of XP needed to advance a level.
const XPPerLevel = 1000

// LevelForXP derives the level from accumulated XP. Level is never stored
// independently of this rule; every mutation recomputes it.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// UserProfile represents a registered child account (one per parent email).
// JSON field names mirror the web client's profile document.
type UserProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"` // child's name
	ParentName string `json:"parentName,omitempty"`
	Age        int    `json:"age"`
	Avatar     string `json:"avatar"`
	IsAdmin    bool   `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`

	// Gamification
	XP               int       `json:"xp"`
	Level            int       `json:"level"`
	Streak           int       `json:"streak"`
	UnlockedSubjects []Subject `json:"unlockedSubjects"`
	MasteredLetters  []string  `json:"masteredLetters"`

	// Subscription
	IsPremium            bool               `json:"isPremium"`
	SubscriptionStatus   SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionPlan     SubscriptionPlan   `json:"subscriptionPlan,omitempty"`
	SubscriptionRenewsAt *time.Time         `json:"subscriptionRenewsAt,omitempty"`
}

// HasUnlocked reports whether the subject is on the profile's unlocked list.
func (p *UserProfile) HasUnlocked(subject Subject) bool {
	for _, s := range p.UnlockedSubjects {
		if s == subject {
			return true
		}
	}
	return false
}

// HasMastered reports whether the letter is already on the mastered list.
func (p *UserProfile) HasMastered(letter string) bool {
	for _, l := range p.MasteredLetters {
		if l == letter {
			return true
		}
	}
	return false
}
