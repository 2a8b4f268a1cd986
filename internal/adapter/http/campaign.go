package httpadapter

import (
	"encoding/json"
	"net/http"

	"clearfund/internal/core/domain"
	"clearfund/internal/core/port"
)

type launchReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	FundGoal    uint64 `json:"fund_goal"`
	StartsAt    uint64 `json:"starts_at"`
	EndsAt      uint64 `json:"ends_at"`
}

type updateReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type campaignResp struct {
	ID              uint64 `json:"id"`
	Owner           string `json:"owner"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Link            string `json:"link"`
	FundGoal        uint64 `json:"fund_goal"`
	StartsAt        uint64 `json:"starts_at"`
	EndsAt          uint64 `json:"ends_at"`
	PledgedAmount   uint64 `json:"pledged_amount"`
	PledgedCount    uint64 `json:"pledged_count"`
	Claimed         bool   `json:"claimed"`
	TargetReached   bool   `json:"target_reached"`
	TargetReachedBy uint64 `json:"target_reached_by"`
}

func toCampaignResp(c *domain.Campaign) campaignResp {
	return campaignResp{
		ID:              c.ID,
		Owner:           c.Owner,
		Title:           c.Title,
		Description:     c.Description,
		Link:            c.Link,
		FundGoal:        c.FundGoal,
		StartsAt:        c.StartsAt,
		EndsAt:          c.EndsAt,
		PledgedAmount:   c.PledgedAmount,
		PledgedCount:    c.PledgedCount,
		Claimed:         c.Claimed,
		TargetReached:   c.TargetReached,
		TargetReachedBy: c.TargetReachedBy,
	}
}

// handleLaunch creates a campaign owned by the caller and returns its id.
// Parsing errors produce HTTP 400; validation failures carry their
// failure code.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	var req launchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.Launch(r.Context(), port.LaunchReq{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		FundGoal:    req.FundGoal,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}, caller)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]uint64{"id": id})
}

// handleGetCampaign returns the full campaign record.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toCampaignResp(c))
}

// handleUpdate overwrites the campaign's display metadata.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req updateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.Update(r.Context(), id, port.UpdateReq{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}, caller)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCancel deletes a campaign that has not started.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Cancel(r.Context(), id, caller); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClaim pays the pledged funds out to the campaign owner.
func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Claim(r.Context(), id, caller); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
