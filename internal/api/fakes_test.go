package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitea.jw6.us/james/pocketcal/internal/auth"
	"gitea.jw6.us/james/pocketcal/internal/calendar"
	"gitea.jw6.us/james/pocketcal/internal/clock"
	"gitea.jw6.us/james/pocketcal/internal/config"
	"gitea.jw6.us/james/pocketcal/internal/store"
	"github.com/go-chi/chi/v5"
)

type fakeUserRepo struct {
	users map[string]*store.User
}

func (f *fakeUserRepo) Upsert(_ context.Context, email string) (*store.User, error) {
	u, ok := f.users[email]
	if !ok {
		u = &store.User{Email: email, CreatedAt: time.Now()}
		f.users[email] = u
	}
	u.LastSeenAt = time.Now()
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*store.User, error) {
	return f.users[email], nil
}

type fakeEventListRepo struct {
	lists map[string][]calendar.Event
	saves int
}

func (f *fakeEventListRepo) Load(_ context.Context, owner string) ([]calendar.Event, error) {
	out := make([]calendar.Event, len(f.lists[owner]))
	copy(out, f.lists[owner])
	return out, nil
}

func (f *fakeEventListRepo) Save(_ context.Context, owner string, events []calendar.Event) error {
	stored := make([]calendar.Event, len(events))
	copy(stored, events)
	f.lists[owner] = stored
	f.saves++
	return nil
}

type fakePrefRepo struct {
	values map[string]string
}

func (f *fakePrefRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (f *fakePrefRepo) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

type testEnv struct {
	handler *Handler
	events  *fakeEventListRepo
	prefs   *fakePrefRepo
	users   *fakeUserRepo
	user    *store.User
}

func newTestEnv(t *testing.T, now time.Time, events []calendar.Event) *testEnv {
	t.Helper()

	cfg := &config.Config{BaseURL: "http://localhost:8080"}
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"

	user := &store.User{Email: "alice@example.com"}
	userRepo := &fakeUserRepo{users: map[string]*store.User{user.Email: user}}
	eventRepo := &fakeEventListRepo{lists: map[string][]calendar.Event{}}
	if events != nil {
		eventRepo.lists[user.Email] = events
	}
	prefRepo := &fakePrefRepo{values: map[string]string{}}

	s := &store.Store{Users: userRepo, Events: eventRepo, Prefs: prefRepo}
	sessions := auth.NewSessionManager(cfg)
	service := auth.NewService(cfg, s, sessions)

	return &testEnv{
		handler: NewHandler(cfg, s, service, clock.Fixed{T: now}),
		events:  eventRepo,
		prefs:   prefRepo,
		users:   userRepo,
		user:    user,
	}
}

// newRequest builds a request carrying the test user's identity, the way
// RequireSession would hand it down.
func (e *testEnv) newRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	return req.WithContext(auth.WithUser(req.Context(), e.user))
}

// withURLParam attaches a chi route parameter the way the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
