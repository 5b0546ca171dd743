package httpx

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Flash variants control how the notice is styled by the layout template.
const (
	FlashNormal      = "normal"
	FlashDestructive = "destructive"
)

// Flash is a one-shot notice carried across a redirect in a short-lived
// cookie. The next page render pops it and the cookie is cleared.
type Flash struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// SetFlash stores a notice for the next rendered page. The payload is
// base64url-encoded JSON so it survives cookie value restrictions.
func SetFlash(w http.ResponseWriter, f Flash) {
	if f.Variant == "" {
		f.Variant = FlashNormal
	}
	payload, err := json.Marshal(f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notice, if any, and clears the cookie.
// Malformed cookies are dropped silently.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil
	}
	return &f
}
