package api

import (
	stderrors "errors"
	"net/http"

	"gitea.jw6.us/james/pocketcal/internal/calendar"
	"gitea.jw6.us/james/pocketcal/internal/http/errors"
	"gitea.jw6.us/james/pocketcal/internal/store"
)

type viewRequest struct {
	Date string `json:"date"`
}

type viewResponse struct {
	Date string `json:"date"`
}

// GetView returns the persisted last-viewed reference date, or 204 when no
// date was ever viewed.
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	value, err := h.store.Prefs.Get(r.Context(), store.LastViewedDateKey)
	if stderrors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		errors.InternalError(w, r, err, "failed to load view preference")
		return
	}
	h.writeJSON(w, r, http.StatusOK, viewResponse{Date: value})
}

// PutView persists the last-viewed reference date. The date uses the same
// DD-MM-YYYY form events carry.
func (h *Handler) PutView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if _, err := calendar.ParseDate(req.Date); err != nil {
		errors.BadRequestError(w, r, err, "invalid date")
		return
	}

	if err := h.store.Prefs.Set(r.Context(), store.LastViewedDateKey, req.Date); err != nil {
		errors.InternalError(w, r, err, "failed to save view preference")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
