package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"felizeducation/internal/audio"
	"felizeducation/internal/content"
	"felizeducation/internal/models"
	"felizeducation/internal/service"
)

// LessonHandler serves lesson generation, tutor hints and letter audio.
type LessonHandler struct {
	resolver *content.Resolver
	profiles *service.ProfileService
	phonics  *audio.PhonicsService
	audioDir string
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(resolver *content.Resolver, profiles *service.ProfileService, phonics *audio.PhonicsService, audioDir string) *LessonHandler {
	return &LessonHandler{
		resolver: resolver,
		profiles: profiles,
		phonics:  phonics,
		audioDir: audioDir,
	}
}

type generateLessonRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// GenerateLesson resolves a lesson for the signed-in child. Letter topics
// are served from the phonics board, free profiles from the curated
// curriculum, premium profiles from the generative provider with
// guaranteed fallback.
func (h *LessonHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())

	var req generateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	subject, ok := models.ParseSubject(req.Subject)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown subject", nil)
		return
	}

	age, isPremium := 6, false
	if claims.Admin {
		age, isPremium = 6, true
	} else {
		profile, err := h.profiles.ProfileByEmail(claims.Email)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load profile", err)
			return
		}
		if profile == nil {
			respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
			return
		}
		age, isPremium = profile.Age, profile.IsPremium
	}

	lesson := h.resolver.ResolveLesson(r.Context(), subject, age, isPremium, req.Topic)
	respondJSON(w, http.StatusOK, lesson)
}

type tutorRequest struct {
	Question string `json:"question"`
	Age      int    `json:"age"`
}

type tutorResponse struct {
	Hint string `json:"hint"`
}

// TutorHelp returns a one-sentence hint for a question.
func (h *LessonHandler) TutorHelp(w http.ResponseWriter, r *http.Request) {
	var req tutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "question is required", nil)
		return
	}
	if req.Age <= 0 {
		req.Age = 6
	}

	hint := h.resolver.TutorHelp(r.Context(), req.Question, req.Age)
	respondJSON(w, http.StatusOK, tutorResponse{Hint: hint})
}

// LetterAudio streams the cached pronunciation MP3 for a letter, for
// example GET /api/letters/B/audio.
func (h *LessonHandler) LetterAudio(w http.ResponseWriter, r *http.Request) {
	letter := strings.ToUpper(r.PathValue("letter"))
	data, ok := content.LookupLetter(letter)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown letter", nil)
		return
	}

	filename, err := h.phonics.LetterAudioFile(data.Letter, data.PhoneticText)
	if err != nil {
		respondError(w, http.StatusBadGateway, "audio generation failed", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, filepath.Join(h.audioDir, filename))
}

// Letters lists the phonics board.
func (h *LessonHandler) Letters(w http.ResponseWriter, r *http.Request) {
	letters := content.Letters()
	out := make([]content.LetterData, 0, len(letters))
	for _, l := range letters {
		if data, ok := content.LookupLetter(l); ok {
			out = append(out, data)
		}
	}
	respondJSON(w, http.StatusOK, out)
}
