package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"felizeducation/internal/models"
	"felizeducation/internal/service"
)

// BillingHandler handles subscription lifecycle requests.
type BillingHandler struct {
	billing *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billing *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

type activateRequest struct {
	Plan string `json:"plan"`
}

// ActivatePremium upgrades the signed-in account. An empty plan defaults
// to monthly.
func (h *BillingHandler) ActivatePremium(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile, err := h.billing.ActivatePremium(claims.Email, models.SubscriptionPlan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
		case errors.Is(err, service.ErrInvalidPlan):
			respondError(w, http.StatusBadRequest, "unknown subscription plan", nil)
		default:
			respondError(w, http.StatusInternalServerError, "failed to activate subscription", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// CancelPremium downgrades the subscription. Already-unlocked subjects
// are kept.
func (h *BillingHandler) CancelPremium(w http.ResponseWriter, r *http.Request) {
	claims := SessionFromContext(r.Context())

	profile, err := h.billing.CancelPremium(claims.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "account no longer exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to cancel subscription", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
