package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, secret string) (*domainauth.Session, bool, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the credential form submission.
// POST /login with form fields email, password and an optional redirect_uri.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_form",
			Err:     err,
		})
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	redirectURI := safeRedirectPath(r.PostFormValue("redirect_uri"))

	session, ok, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		if IsBrowserRequest(r) {
			SetFlash(w, Flash{
				Title:       "Login Failed",
				Description: "Something went wrong, please try again",
				Variant:     FlashDestructive,
			})
			http.Redirect(w, r, h.loginPageURL(redirectURI), http.StatusSeeOther)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	if !ok {
		// Wrong credentials are an expected outcome, not a server error.
		if IsBrowserRequest(r) {
			SetFlash(w, Flash{
				Title:       "Login Failed",
				Description: "Invalid email or password",
				Variant:     FlashDestructive,
			})
			http.Redirect(w, r, h.loginPageURL(redirectURI), http.StatusSeeOther)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_credentials",
			Err:     errors.New("invalid email or password"),
		})
		return
	}

	h.setSessionCookie(w, r, *session)

	// Post-login destination follows the role landing policy. The redirect_uri
	// carried through the login form is accepted but not consumed here.
	destination := domainauth.LandingPath(session.Role)

	if IsBrowserRequest(r) {
		SetFlash(w, Flash{
			Title:       "Login Successful",
			Description: "Welcome back, " + session.DisplayName,
		})
		http.Redirect(w, r, destination, http.StatusSeeOther)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"redirect_to":   destination,
		"user":          sessionUserPayload(session),
	})
}

// Logout handles the logout endpoint.
// POST /logout. Idempotent: logging out without a live session still succeeds.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	// Get session ID from cookie and invalidate server-side session if present
	if sessionCookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	// Clear session cookie on the client
	h.clearCookie(w, r, SessionCookieName)

	if IsBrowserRequest(r) {
		SetFlash(w, Flash{
			Title:       "Logged Out",
			Description: "You have been signed out",
		})
		http.Redirect(w, r, domainauth.LoginPath, http.StatusSeeOther)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"redirect_to": domainauth.LoginPath,
	})
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Session is invalid, clear the cookie
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          sessionUserPayload(session),
	})
}

func sessionUserPayload(s *domainauth.Session) map[string]interface{} {
	return map[string]interface{}{
		"id":           s.UserID,
		"email":        s.Email,
		"display_name": s.DisplayName,
		"role":         s.Role,
	}
}

// loginPageURL rebuilds the login page URL, preserving the redirect_uri the
// failed attempt carried.
func (h *AuthHandlers) loginPageURL(redirectURI string) string {
	if redirectURI == "" || redirectURI == "/" {
		return domainauth.LoginPath
	}
	return domainauth.LoginPath + "?redirect_uri=" + url.QueryEscape(redirectURI)
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionCookie writes the session cookie. Sessions have no server-side
// expiry, so the cookie is session-lived: no MaxAge or Expires is set.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
