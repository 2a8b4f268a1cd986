package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"clearfund/internal/core/domain"
)

// identityHeader names the header carrying the caller's identity.
// Authentication itself is an external concern; the service trusts the
// layer in front of it.
const identityHeader = "X-Identity"

// identity extracts the caller from the request. A missing identity is
// reported as 401 and false is returned.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(identityHeader)
	if caller == "" {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return "", false
	}
	return caller, true
}

// campaignID parses the {id} path parameter. Malformed ids produce 400
// and false is returned.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondJSON writes v as a JSON body with the given status.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps a categorical failure onto an HTTP status and a JSON
// body carrying the failure code. Anything outside the closed set is an
// internal error.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var f *domain.Failure
	if !errors.As(err, &f) {
		h.logger.Error("internal error", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, failureStatus(f), map[string]any{
		"error": f.Reason,
		"code":  f.Code,
	})
}

func failureStatus(f *domain.Failure) int {
	switch f {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrNotOwner:
		return http.StatusForbidden
	case domain.ErrEmptyField, domain.ErrInvalidGoal, domain.ErrStartInPast,
		domain.ErrInvalidWindow, domain.ErrZeroAmount:
		return http.StatusUnprocessableEntity
	case domain.ErrTransferFailed:
		return http.StatusBadGateway
	default:
		// phase and state conflicts: AlreadyStarted, NotStarted,
		// CampaignEnded, NoInvestment, ExceedsPledged, StillActive,
		// GoalReached, AlreadyClaimed, GoalNotReached
		return http.StatusConflict
	}
}
