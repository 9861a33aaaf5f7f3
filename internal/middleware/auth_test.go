package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scriptmarket/internal/auth"

	"github.com/labstack/echo/v4"
)

func runWith(t *testing.T, mw echo.MiddlewareFunc, setup func(*http.Request)) (*httptest.ResponseRecorder, string, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw(func(c echo.Context) error {
		seen = UserID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen, err
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	a := NewAuth(tokens, "session")

	tok, _, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tests := []struct {
		name     string
		mw       echo.MiddlewareFunc
		setup    func(*http.Request)
		wantUser string
		wantErr  bool
	}{
		{
			name:     "bearer header",
			mw:       a.RequireAuth(),
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) },
			wantUser: "user-1",
		},
		{
			name:     "cookie",
			mw:       a.RequireAuth(),
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: tok}) },
			wantUser: "user-1",
		},
		{
			name:    "required without session",
			mw:      a.RequireAuth(),
			setup:   func(*http.Request) {},
			wantErr: true,
		},
		{
			name:    "required with garbage token",
			mw:      a.RequireAuth(),
			setup:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			wantErr: true,
		},
		{
			name:  "optional without session",
			mw:    a.OptionalAuth(),
			setup: func(*http.Request) {},
		},
		{
			name:  "optional with garbage cookie",
			mw:    a.OptionalAuth(),
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: "nope"}) },
		},
		{
			name:     "optional with session",
			mw:       a.OptionalAuth(),
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "bearer "+tok) },
			wantUser: "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, seen, err := runWith(t, tt.mw, tt.setup)
			if tt.wantErr {
				he, ok := err.(*echo.HTTPError)
				if !ok || he.Code != http.StatusUnauthorized {
					t.Fatalf("expected 401, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if seen != tt.wantUser {
				t.Fatalf("user id %q, want %q", seen, tt.wantUser)
			}
		})
	}
}
