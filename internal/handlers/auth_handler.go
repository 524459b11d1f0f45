package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"felizeducation/internal/service"
	"felizeducation/internal/validation"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	profiles   *service.ProfileService
	middleware *Middleware
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(profiles *service.ProfileService, middleware *Middleware) *AuthHandler {
	return &AuthHandler{
		profiles:   profiles,
		middleware: middleware,
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	ChildName string `json:"childName"`
	Age       int    `json:"age"`
	Avatar    string `json:"avatar"`
}

// Register creates a new account and signs it in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile, err := h.profiles.Register(r.Context(), req.Email, req.Password, req.ChildName, req.Age, req.Avatar)
	if err != nil {
		var vErr validation.ValidationError
		switch {
		case errors.As(err, &vErr):
			respondError(w, http.StatusBadRequest, vErr.Error(), nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusConflict, "an account with this email already exists", nil)
		default:
			respondError(w, http.StatusInternalServerError, "failed to create account", err)
		}
		return
	}

	if err := h.middleware.IssueSession(w, profile.Email, profile.IsAdmin); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to establish session", err)
		return
	}
	respondJSON(w, http.StatusCreated, profile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a parent and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile, err := h.profiles.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "invalid email or password", nil)
		default:
			respondError(w, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	if err := h.middleware.IssueSession(w, profile.Email, profile.IsAdmin); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to establish session", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Logout clears the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.profiles.Logout()
	h.middleware.ClearSession(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// Me returns the signed-in profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if claims.Admin {
		admin := service.AdminProfile(claims.Email)
		respondJSON(w, http.StatusOK, admin)
		return
	}

	profile, err := h.profiles.ProfileByEmail(claims.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile", err)
		return
	}
	if profile == nil {
		h.middleware.ClearSession(w)
		respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
