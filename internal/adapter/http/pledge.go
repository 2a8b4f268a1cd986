package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type amountReq struct {
	Amount uint64 `json:"amount"`
}

type investmentResp struct {
	CampaignID uint64 `json:"campaign_id"`
	Investor   string `json:"investor"`
	Amount     uint64 `json:"amount"`
}

// handlePledge moves the caller's amount into escrow against the
// campaign.
func (h *Handler) handlePledge(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req amountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.Pledge(r.Context(), id, req.Amount, caller); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"pledged": true})
}

// handleUnpledge returns part or all of the caller's pledge while the
// campaign is running.
func (h *Handler) handleUnpledge(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req amountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.Unpledge(r.Context(), id, req.Amount, caller); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"unpledged": true})
}

// handleRefund returns the caller's full outstanding pledge from a
// failed campaign.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Refund(r.Context(), id, caller); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"refunded": true})
}

// handleGetInvestment returns the investor's outstanding pledge in the
// campaign. A missing record responds with a JSON null body rather than
// an error, distinguishing "no investment" from "no such campaign".
func (h *Handler) handleGetInvestment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	investor := chi.URLParam(r, "investor")
	inv, err := h.svc.GetInvestment(r.Context(), id, investor)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if inv == nil {
		h.respondJSON(w, http.StatusOK, map[string]any{"investment": nil})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"investment": investmentResp{
		CampaignID: inv.CampaignID,
		Investor:   inv.Investor,
		Amount:     inv.Amount,
	}})
}
