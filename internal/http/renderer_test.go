package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTemplateFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "login-content", ContentTemplateFor(PageLogin))
	assert.Equal(t, "blueprint-content", ContentTemplateFor(PageBlueprint))
	assert.Equal(t, "samples-content", ContentTemplateFor(PageSamples))
	assert.Equal(t, "generate-content", ContentTemplateFor(PageGenerate))
	assert.Equal(t, "blueprint-content", ContentTemplateFor("unknown"))
}

func TestNewTemplateRenderer_RequiresFS(t *testing.T) {
	t.Parallel()

	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.Error(t, err)
}

func TestTemplateRenderer_RenderFull_DispatchesByPage(t *testing.T) {
	t.Parallel()

	tr := newTestRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()

	err := tr.RenderFull(w, req, map[string]any{
		"Title":       "Sign In - QuizForge",
		"PageTitle":   "Sign In",
		"CurrentPage": PageLogin,
		"RedirectURI": "/",
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<h1>Sign In</h1>")
	assert.Contains(t, body, `name="password"`)
	// Anonymous pages carry no nav links
	assert.NotContains(t, body, "Sign Out")
}

func TestTemplateRenderer_RenderFull_AuthenticatedNav(t *testing.T) {
	t.Parallel()

	tr := newTestRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/samples", nil)
	w := httptest.NewRecorder()

	err := tr.RenderFull(w, req, map[string]any{
		"Title":           "Sample Sets - QuizForge",
		"PageTitle":       "Sample Question Sets",
		"CurrentPage":     PageSamples,
		"IsAuthenticated": true,
		"IsAdmin":         false,
		"LandingPath":     "/blueprint",
		"User":            map[string]any{"Email": "user@example.com"},
		"Flash":           &Flash{Title: "Logged In", Variant: FlashNormal},
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "user@example.com")
	assert.Contains(t, body, "Sign Out")
	assert.Contains(t, body, "flash-normal")
	assert.Contains(t, body, "Logged In")
	// Regular users get the full link set and a brand link to their landing page
	assert.Contains(t, body, `href="/blueprint"`)
	assert.Contains(t, body, `href="/generate"`)
	assert.Contains(t, body, `href="/blueprint" class="brand"`)
}

func TestTemplateRenderer_RenderFull_AdminNav(t *testing.T) {
	t.Parallel()

	tr := newTestRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/samples", nil)
	w := httptest.NewRecorder()

	err := tr.RenderFull(w, req, map[string]any{
		"Title":           "Sample Sets - QuizForge",
		"PageTitle":       "Sample Question Sets",
		"CurrentPage":     PageSamples,
		"IsAuthenticated": true,
		"IsAdmin":         true,
		"LandingPath":     "/samples",
		"User":            map[string]any{"Email": "admin@example.com"},
	})
	require.NoError(t, err)

	body := w.Body.String()
	// Admins are never offered the user-only destinations; the brand link is
	// their landing page
	assert.NotContains(t, body, `href="/blueprint"`)
	assert.NotContains(t, body, `href="/generate"`)
	assert.Contains(t, body, `href="/samples" class="brand"`)
	assert.Contains(t, body, "Sign Out")
}

func TestTemplateRenderer_RenderError(t *testing.T) {
	t.Parallel()

	tr := newTestRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	err := tr.RenderError(w, req, map[string]any{
		"Title":       "Page Not Found - QuizForge",
		"Code":        "404",
		"Message":     "The page you're looking for doesn't exist.",
		"ShowLogin":   true,
		"RedirectURI": "/nope",
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "<h1>404</h1>")
	assert.Contains(t, body, "/login?redirect_uri=/nope")
}
