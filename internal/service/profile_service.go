package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"felizeducation/internal/models"
	"felizeducation/internal/repository"
	"felizeducation/internal/security"
	"felizeducation/internal/validation"
)

// Age above which the numeracy subject is unlocked at registration.
const arithmeticUnlockAge = 5

// XP bonus granted the first time a letter is mastered.
const letterMasteryBonus = 20

// adminPassword is the reserved backdoor credential: any email containing
// "admin" with this password yields an ephemeral administrative profile.
const adminPassword = "admin"

// ProfileService owns account lifecycle and gamification state. It is the
// only component that mutates UserProfile records.
type ProfileService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	email    *EmailService
}

// NewProfileService creates a new profile service
func NewProfileService(users *repository.UserRepository, sessions *repository.SessionRepository, email *EmailService) *ProfileService {
	return &ProfileService{
		users:    users,
		sessions: sessions,
		email:    email,
	}
}

// Register creates a new account keyed by the parent's email and signs it
// in. The literacy subject is always unlocked; the numeracy subject is
// added for children older than five.
func (s *ProfileService) Register(ctx context.Context, email, password, childName string, age int, avatar string) (*models.UserProfile, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateChildName(childName); err != nil {
		return nil, err
	}
	if err := validation.ValidateAge(age); err != nil {
		return nil, err
	}

	existing, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		ID:                 uuid.New().String(),
		Email:              strings.ToLower(strings.TrimSpace(email)),
		Name:               childName,
		Age:                age,
		Avatar:             avatar,
		CreatedAt:          now,
		LastLogin:          now,
		Level:              1,
		UnlockedSubjects:   []models.Subject{models.SubjectGrammar},
		MasteredLetters:    []string{},
		SubscriptionStatus: models.SubscriptionFree,
	}
	if age > arithmeticUnlockAge {
		profile.UnlockedSubjects = append(profile.UnlockedSubjects, models.SubjectArithmetic)
	}
	profile = repository.RepairProfile(profile)

	if err := s.users.Save(&repository.UserRecord{PasswordHash: passwordHash, Profile: profile}); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(profile); err != nil {
		return &profile, err
	}

	s.email.SendWelcomeEmail(ctx, profile.Email, profile.Name)

	return &profile, nil
}

// Login authenticates a parent and establishes the active session. The
// reserved admin credential short-circuits to an ephemeral administrative
// profile without touching the store.
func (s *ProfileService) Login(email, password string) (*models.UserProfile, error) {
	if strings.Contains(strings.ToLower(email), "admin") && password == adminPassword {
		admin := AdminProfile(email)
		return &admin, nil
	}

	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}
	if !security.CheckPassword(password, rec.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	rec.Profile.LastLogin = time.Now().UTC()
	if err := s.users.Save(rec); err != nil {
		return &rec.Profile, err
	}
	if err := s.sessions.Save(rec.Profile); err != nil {
		return &rec.Profile, err
	}

	return &rec.Profile, nil
}

// Logout clears the active session. Never fails from the caller's point
// of view; storage errors are logged and swallowed.
func (s *ProfileService) Logout() {
	if err := s.sessions.Clear(); err != nil {
		logrus.WithError(err).Warn("failed to clear session")
	}
}

// CurrentUser returns the signed-in profile, or nil when nobody is signed
// in. If the repair pass corrected the stored session, the corrected
// version is re-persisted before returning.
func (s *ProfileService) CurrentUser() (*models.UserProfile, error) {
	profile, changed, err := s.sessions.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if changed {
		if err := s.sessions.Save(*profile); err != nil {
			logrus.WithError(err).Warn("failed to re-persist repaired session")
		}
	}
	return profile, nil
}

// UpdateProgress adds earned XP, recomputes the level and bumps the
// streak. The streak increments on every call; it is not calendar-aware.
func (s *ProfileService) UpdateProgress(email string, xpEarned int) (*models.UserProfile, error) {
	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}

	rec.Profile.XP += xpEarned
	rec.Profile.Level = models.LevelForXP(rec.Profile.XP)
	rec.Profile.Streak++

	return s.persist(rec)
}

// MarkLetterMastered records a mastered letter. The first mastery of a
// letter grants a fixed XP bonus; mastering it again is a no-op.
func (s *ProfileService) MarkLetterMastered(email, letter string) (*models.UserProfile, error) {
	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}

	if !rec.Profile.HasMastered(letter) {
		rec.Profile.MasteredLetters = append(rec.Profile.MasteredLetters, letter)
		rec.Profile.XP += letterMasteryBonus
		rec.Profile.Level = models.LevelForXP(rec.Profile.XP)
	}

	return s.persist(rec)
}

// persist writes the record and mirrors the profile into the session slot.
// On write failure the mutated profile is still returned alongside the
// error: the in-memory view and the store can diverge (single-writer,
// last-write-wins store with no rollback).
func (s *ProfileService) persist(rec *repository.UserRecord) (*models.UserProfile, error) {
	if err := s.users.Save(rec); err != nil {
		return &rec.Profile, err
	}
	if err := s.sessions.Save(rec.Profile); err != nil {
		return &rec.Profile, err
	}
	return &rec.Profile, nil
}

// ProfileByEmail returns the stored profile for an account, or nil when
// no such account exists.
func (s *ProfileService) ProfileByEmail(email string) (*models.UserProfile, error) {
	rec, err := s.users.Get(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return &rec.Profile, nil
}

// AdminProfile builds the ephemeral all-access profile for the backdoor
// credential. It is never persisted.
func AdminProfile(email string) models.UserProfile {
	return repository.RepairProfile(models.UserProfile{
		ID:               "admin",
		Email:            strings.ToLower(strings.TrimSpace(email)),
		Name:             "Admin User",
		Age:              6,
		IsAdmin:          true,
		IsPremium:        true,
		XP:               1250,
		Streak:           5,
		LastLogin:        time.Now().UTC(),
		UnlockedSubjects: models.AllSubjects(),
		MasteredLetters:  []string{},

		SubscriptionStatus: models.SubscriptionActive,
	})
}
