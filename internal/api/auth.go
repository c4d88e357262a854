package api

import (
	"net/http"

	"gitea.jw6.us/james/pocketcal/internal/auth"
	"gitea.jw6.us/james/pocketcal/internal/http/errors"
)

type signInRequest struct {
	Email string `json:"email"`
}

// SignIn validates the submitted email, upserts the user, and issues a
// session cookie. The format check is the whole of authentication.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.authService.SignIn(r.Context(), w, req.Email); err != nil {
		if err == auth.ErrInvalidEmail {
			errors.BadRequestError(w, r, err, err.Error())
			return
		}
		errors.InternalError(w, r, err, "sign-in failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SignOut clears the session cookie. Persisted events are untouched.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.authService.SignOut(w)
	w.WriteHeader(http.StatusNoContent)
}
