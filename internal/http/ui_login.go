package httpx

import (
	"net/http"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

// LoginPage renders the credential form.
// GET /login?redirect_uri=<optional>. An already-authenticated caller is
// sent straight to its role landing page.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, domainauth.LandingPath(session.Role), http.StatusSeeOther)
		return
	}

	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	data := NewTemplateData(r, PageMeta{
		Title:       "Sign In - QuizForge",
		PageTitle:   "Sign In",
		CurrentPage: PageLogin,
	}).
		WithFlash(PopFlash(w, r)).
		With("RedirectURI", redirectURI).
		Build()

	h.render(w, r, data)
}
