package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gitea.jw6.us/james/pocketcal/internal/config"
	"gitea.jw6.us/james/pocketcal/internal/store"
)

// ErrInvalidEmail rejects sign-in attempts without a plausible address.
// This format check is the whole of authentication; there are no passwords.
var ErrInvalidEmail = errors.New("a valid email address is required")

// Service encapsulates the email sign-in flow and session enforcement.
type Service struct {
	cfg      *config.Config
	store    *store.Store
	sessions *SessionManager
}

func NewService(cfg *config.Config, store *store.Store, sessions *SessionManager) *Service {
	return &Service{cfg: cfg, store: store, sessions: sessions}
}

// ValidateEmail applies the sign-in format check: non-empty and containing
// an @.
func ValidateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// SignIn validates the email, upserts the user, and issues a session
// cookie.
func (s *Service) SignIn(ctx context.Context, w http.ResponseWriter, email string) (*store.User, error) {
	email = strings.TrimSpace(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.store.Users.Upsert(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Issue(w, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// SignOut clears the session cookie. The user's persisted events are
// retained for the next sign-in; only the session goes away.
func (s *Service) SignOut(w http.ResponseWriter) {
	s.sessions.Clear(w)
}

// RequireSession resolves the session cookie to a user and stores it on the
// request context, rejecting unauthenticated requests with 401.
func (s *Service) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := s.sessions.CurrentUserEmail(r)
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		user, err := s.store.Users.GetByEmail(r.Context(), email)
		if err != nil {
			http.Error(w, "failed to load user", http.StatusInternalServerError)
			return
		}
		if user == nil {
			// Session references an identity we no longer know about.
			s.sessions.Clear(w)
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
