package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/pocketcal/internal/calendar"
	"gitea.jw6.us/james/pocketcal/internal/http/errors"
)

type eventListResponse struct {
	Filter calendar.Filter  `json:"filter"`
	Events []calendar.Event `json:"events"`
}

// ListEvents returns the signed-in user's events, filtered and sorted. An
// event happening today always counts as upcoming, whatever the wall clock
// says.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := calendar.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		errors.BadRequestError(w, r, err, "invalid filter parameter")
		return
	}

	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	events := coll.My(filter, h.clock.Now())
	if events == nil {
		events = []calendar.Event{}
	}
	h.writeJSON(w, r, http.StatusOK, eventListResponse{Filter: filter, Events: events})
}

// CreateEvent validates and appends a new event to the user's list, echoing
// the stored record with its assigned id and gradient.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req calendar.Event
	if !h.decodeJSON(w, r, &req) {
		return
	}

	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	created, err := coll.Add(req)
	if err != nil {
		errors.BadRequestError(w, r, err, err.Error())
		return
	}

	if err := h.saveCollection(r, coll); err != nil {
		errors.InternalError(w, r, err, "failed to save events")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, created)
}

// TogglePin flips the pinned flag on the referenced event. An unknown id is
// a no-op, and no-ops still answer 204 so stale clients stay quiet.
func (h *Handler) TogglePin(w http.ResponseWriter, r *http.Request) {
	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	if coll.TogglePin(chi.URLParam(r, "id")) {
		if err := h.saveCollection(r, coll); err != nil {
			errors.InternalError(w, r, err, "failed to save events")
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent removes the referenced event, treating unknown ids the same
// way TogglePin does.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	if coll.Delete(chi.URLParam(r, "id")) {
		if err := h.saveCollection(r, coll); err != nil {
			errors.InternalError(w, r, err, "failed to save events")
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// NextEvent returns the user's earliest event strictly after now, or 204
// when nothing is scheduled.
func (h *Handler) NextEvent(w http.ResponseWriter, r *http.Request) {
	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	next, ok := coll.Next(h.clock.Now())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, r, http.StatusOK, next)
}
