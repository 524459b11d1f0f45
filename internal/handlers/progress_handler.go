package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"felizeducation/internal/content"
	"felizeducation/internal/service"
)

// ProgressHandler handles gamification state updates.
type ProgressHandler struct {
	profiles *service.ProfileService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(profiles *service.ProfileService) *ProgressHandler {
	return &ProgressHandler{profiles: profiles}
}

type progressRequest struct {
	XPEarned int `json:"xpEarned"`
}

// UpdateProgress credits earned XP and bumps the streak.
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.XPEarned < 0 {
		respondError(w, http.StatusBadRequest, "xpEarned must not be negative", nil)
		return
	}

	profile, err := h.profiles.UpdateProgress(claims.Email, req.XPEarned)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update progress", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

type masteryRequest struct {
	Letter string `json:"letter"`
}

// MarkLetterMastered records a mastered letter, granting the one-time
// XP bonus on first mastery.
func (h *ProgressHandler) MarkLetterMastered(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())

	var req masteryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	letter := strings.ToUpper(strings.TrimSpace(req.Letter))
	if _, ok := content.LookupLetter(letter); !ok {
		respondError(w, http.StatusBadRequest, "unknown letter", nil)
		return
	}

	profile, err := h.profiles.MarkLetterMastered(claims.Email, letter)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to record mastery", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Recommendation returns the age-based learning path. Age comes from the
// query string so the onboarding flow can call it before registration.
func (h *ProgressHandler) Recommendation(w http.ResponseWriter, r *http.Request) {
	age, err := strconv.Atoi(r.URL.Query().Get("age"))
	if err != nil || age < 1 {
		respondError(w, http.StatusBadRequest, "age query parameter is required", nil)
		return
	}
	respondJSON(w, http.StatusOK, service.RecommendLearningPath(age))
}
