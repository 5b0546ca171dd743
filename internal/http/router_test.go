package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rabbitt-ai/quizforge/internal/adapters/credstore"
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/mocks"
	mocksauth "github.com/rabbitt-ai/quizforge/internal/mocks/auth"
	"github.com/rabbitt-ai/quizforge/internal/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	blueprintRepo := mocks.NewMockBlueprintRepository(ctrl)
	blueprintRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	blueprintRepo.EXPECT().ListByCreator(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	sampleRepo := mocks.NewMockSampleRepository(ctrl)
	sampleRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: credstore.New(credstore.Defaults()),
		Sessions:    mocksauth.NewMemorySessionStore(),
	})

	return NewRouter(RouterServices{
		Auth:       auth,
		Blueprints: service.NewBlueprintService(service.BlueprintServiceOptions{Blueprints: blueprintRepo}),
		Samples:    service.NewSampleService(service.SampleServiceOptions{Samples: sampleRepo}),
		Generator:  service.NewGenerateService(service.GenerateServiceOptions{}),
	})
}

func browserGet(router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func browserPostForm(router http.Handler, path, form string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestRouter_LoginLogoutFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Unauthenticated root request bounces to login
	w := browserGet(router, "/", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2F", w.Header().Get("Location"))

	// Login with the admin demo account
	w = browserPostForm(router, "/login", "email=admin%40example.com&password=admin123", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.SamplesPath, w.Header().Get("Location"))
	cookie := sessionCookieFrom(t, w)

	// Admin can view the samples page, including the upload form
	w = browserGet(router, "/samples", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/samples/upload")

	// Blueprint pages belong to regular users; admin is bounced home
	w = browserGet(router, "/blueprint", cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.SamplesPath, w.Header().Get("Location"))

	// Logout invalidates the session server-side
	w = browserPostForm(router, "/logout", "", cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.LoginPath, w.Header().Get("Location"))

	w = browserGet(router, "/samples", cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fsamples", w.Header().Get("Location"))
}

func TestRouter_UserRoleFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := browserPostForm(router, "/login", "email=user%40example.com&password=user123", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.BlueprintPath, w.Header().Get("Location"))
	cookie := sessionCookieFrom(t, w)

	// Users reach the blueprint and generate pages
	w = browserGet(router, "/blueprint", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = browserGet(router, "/generate", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// Samples are visible but the upload form is admin-only
	w = browserGet(router, "/samples", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "/samples/upload")
}

func TestRouter_BadCredentials(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := browserPostForm(router, "/login", "email=admin%40example.com&password=nope", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.LoginPath, w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, SessionCookieName, c.Name)
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := browserGet(router, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}
