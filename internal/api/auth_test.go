package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignInHandler(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		wantStatusCode int
		wantCookie     bool
		wantBody       string
	}{
		{
			name:           "valid email",
			body:           `{"email":"bob@example.com"}`,
			wantStatusCode: http.StatusNoContent,
			wantCookie:     true,
		},
		{
			name:           "email with surrounding whitespace",
			body:           `{"email":"  bob@example.com  "}`,
			wantStatusCode: http.StatusNoContent,
			wantCookie:     true,
		},
		{
			name:           "missing at sign",
			body:           `{"email":"bob.example.com"}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "valid email address",
		},
		{
			name:           "empty email",
			body:           `{"email":""}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "valid email address",
		},
		{
			name:           "malformed body",
			body:           `{"email"`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, testNow, nil)

			req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			env.handler.SignIn(w, req)

			if w.Code != tc.wantStatusCode {
				t.Fatalf("SignIn() status = %d, want %d", w.Code, tc.wantStatusCode)
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Errorf("response body %q does not carry %q", w.Body.String(), tc.wantBody)
			}

			cookies := w.Result().Cookies()
			if tc.wantCookie {
				if len(cookies) == 0 {
					t.Fatal("expected a session cookie")
				}
				if _, ok := env.users.users["bob@example.com"]; !ok {
					t.Error("sign-in did not upsert the user")
				}
			} else if len(cookies) != 0 {
				t.Errorf("rejected sign-in must not set cookies, got %d", len(cookies))
			}
		})
	}
}

func TestSignOutHandler(t *testing.T) {
	env := newTestEnv(t, testNow, standupEvents())

	req := env.newRequest(t, http.MethodPost, "/auth/signout", nil)
	w := httptest.NewRecorder()
	env.handler.SignOut(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("SignOut() status = %d, want %d", w.Code, http.StatusNoContent)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected an expiring session cookie")
	}
	if cookies[0].MaxAge >= 0 && cookies[0].Expires.IsZero() {
		t.Error("sign-out cookie does not expire the session")
	}

	// Sign-out only drops the session; the event list stays.
	if len(env.events.lists[env.user.Email]) == 0 {
		t.Error("sign-out must not touch persisted events")
	}
}
