package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

func TestGuard_UnauthenticatedBrowser_RedirectsToLogin(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(nil)
	handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for unauthenticated request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/blueprint", nil)
	w := doBrowserRequest(handler, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fblueprint", w.Header().Get("Location"))
}

func TestGuard_UnauthenticatedBrowser_PreservesQueryInRedirect(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(nil)
	handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/samples?limit=10", nil)
	w := doBrowserRequest(handler, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fsamples%3Flimit%3D10", w.Header().Get("Location"))
}

func TestGuard_UnauthenticatedAPI_Returns401(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(nil)
	handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for unauthenticated request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/blueprint", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	BrowserDetection()(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestGuard_InvalidSessionCookie_TreatedAsUnauthenticated(t *testing.T) {
	t.Parallel()

	authSvc := &mockAuthService{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			assert.Equal(t, "stale-session", sessionID)
			return nil, context.Canceled
		},
	}
	handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/blueprint", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-session"})
	w := doBrowserRequest(handler, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fblueprint", w.Header().Get("Location"))
}

func TestGuard_RoleMismatchBrowser_RedirectsToRoleHome(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(userSession())
	adminOnly := domainauth.RouteAccess{AllowedRoles: []domainauth.Role{domainauth.RoleAdmin}}
	handler := Guard(authSvc, adminOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for role mismatch")
	}))

	req := httptest.NewRequest(http.MethodPost, "/samples/upload", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-user"})
	w := doBrowserRequest(handler, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.LandingPath(domainauth.RoleUser), w.Header().Get("Location"))

	// Access denied notice travels as a flash cookie
	var flashCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == FlashCookieName {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie)
	assert.NotEmpty(t, flashCookie.Value)
}

func TestGuard_RoleMismatchAPI_Returns403(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(userSession())
	adminOnly := domainauth.RouteAccess{AllowedRoles: []domainauth.Role{domainauth.RoleAdmin}}
	handler := Guard(authSvc, adminOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for role mismatch")
	}))

	req := httptest.NewRequest(http.MethodPost, "/samples/upload", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-user"})
	w := httptest.NewRecorder()
	BrowserDetection()(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "insufficient_permissions")
}

func TestGuard_Authenticated_InjectsSessionIntoContext(t *testing.T) {
	t.Parallel()

	session := adminSession()
	authSvc := authServiceWithSession(session)
	called := false
	handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, ok := GetUserSessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, session.Email, got.Email)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/samples", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
	w := doBrowserRequest(handler, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_EmptyAccess_AllowsAnyRole(t *testing.T) {
	t.Parallel()

	for _, session := range []*domainauth.Session{userSession(), adminSession()} {
		authSvc := authServiceWithSession(session)
		called := false
		handler := Guard(authSvc, domainauth.RouteAccess{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/samples", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
		doBrowserRequest(handler, req)

		assert.True(t, called, "role %s should pass an unrestricted guard", session.Role)
	}
}

func TestOptionalAuth_WithValidSession(t *testing.T) {
	t.Parallel()

	session := userSession()
	authSvc := authServiceWithSession(session)
	handler := OptionalAuth(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := GetUserSessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, session.ID, got.ID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.ID})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
}

func TestOptionalAuth_WithoutSession_ContinuesAnonymously(t *testing.T) {
	t.Parallel()

	authSvc := authServiceWithSession(nil)
	called := false
	handler := OptionalAuth(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := GetUserSessionFromContext(r.Context())
		assert.False(t, ok)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
}

func TestIsBrowserRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		accept string
		want   bool
	}{
		{"html accept", "/blueprint", "text/html,application/xhtml+xml", true},
		{"no accept header", "/blueprint", "", true},
		{"json accept", "/blueprint", "application/json", false},
		{"api path", "/api/blueprints", "text/html", false},
		{"static path", "/static/app.css", "text/html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, isBrowserRequest(req))
		})
	}
}
