// Package api serves the JSON endpoints behind the scheduling UI: sign-in,
// month and year grids, the event list with its filters, and the persisted
// last-viewed date.
package api

import (
	"encoding/json"
	"net/http"

	"gitea.jw6.us/james/pocketcal/internal/auth"
	"gitea.jw6.us/james/pocketcal/internal/calendar"
	"gitea.jw6.us/james/pocketcal/internal/clock"
	"gitea.jw6.us/james/pocketcal/internal/config"
	"gitea.jw6.us/james/pocketcal/internal/http/errors"
	"gitea.jw6.us/james/pocketcal/internal/store"
)

const maxBodyBytes = 1 << 20

// Handler serves the JSON API.
type Handler struct {
	cfg         *config.Config
	store       *store.Store
	authService *auth.Service
	clock       clock.Clock
}

func NewHandler(cfg *config.Config, store *store.Store, authService *auth.Service, clock clock.Clock) *Handler {
	return &Handler{cfg: cfg, store: store, authService: authService, clock: clock}
}

// collectionFor loads the signed-in user's full event list into a working
// collection. Every request re-reads the list so a mutation from another
// session is never shadowed by stale in-memory state.
func (h *Handler) collectionFor(r *http.Request) (*calendar.Collection, error) {
	user, _ := auth.UserFromContext(r.Context())
	events, err := h.store.Events.Load(r.Context(), user.Email)
	if err != nil {
		return nil, err
	}
	return calendar.NewCollection(user.Email, events), nil
}

// saveCollection writes the owner's ordered list back wholesale.
func (h *Handler) saveCollection(r *http.Request, c *calendar.Collection) error {
	return h.store.Events.Save(r.Context(), c.Owner(), c.Events())
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errors.LogError(r, "failed to encode response", err)
	}
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		errors.BadRequestError(w, r, err, "invalid request body")
		return false
	}
	return true
}
