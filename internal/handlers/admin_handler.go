package handlers

import (
	"net/http"

	"felizeducation/internal/service"
)

// AdminHandler serves the parent/admin dashboard endpoints.
type AdminHandler struct {
	billing *service.BillingService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(billing *service.BillingService) *AdminHandler {
	return &AdminHandler{billing: billing}
}

// Users lists every registered profile, repaired. Password hashes never
// leave the repository layer.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.billing.AllUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// Transactions lists the payment ledger, newest first.
func (h *AdminHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.billing.Transactions()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list transactions", err)
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

// KPIs returns the dashboard aggregates.
func (h *AdminHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	report, err := h.billing.DashboardKPIs()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute KPIs", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
