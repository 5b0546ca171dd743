package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// mockAuthService is a func-field test double for AuthServiceInterface.
type mockAuthService struct {
	loginFunc      func(ctx context.Context, email, secret string) (*domainauth.Session, bool, error)
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc     func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) Login(ctx context.Context, email, secret string) (*domainauth.Session, bool, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, secret)
	}
	return nil, false, nil
}

func (m *mockAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return nil, context.Canceled
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

// authServiceWithSession returns a mock that resolves any cookie to the given session.
func authServiceWithSession(session *domainauth.Session) *mockAuthService {
	return &mockAuthService{
		getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			if session == nil {
				return nil, context.Canceled
			}
			return session, nil
		},
	}
}

func userSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-user",
		UserID:      "2",
		Email:       "user@example.com",
		DisplayName: "Regular User",
		Role:        domainauth.RoleUser,
	}
}

func adminSession() *domainauth.Session {
	return &domainauth.Session{
		ID:          "sess-admin",
		UserID:      "1",
		Email:       "admin@example.com",
		DisplayName: "Admin User",
		Role:        domainauth.RoleAdmin,
	}
}

// stubBlueprints implements BlueprintsService for handler tests.
type stubBlueprints struct {
	createFunc func(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]*model.Blueprint, error)
}

func (s *stubBlueprints) Create(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, req)
	}
	return &model.Blueprint{ID: "bp-1", Topic: req.Topic}, nil
}

func (s *stubBlueprints) GetByID(_ context.Context, id string) (*model.Blueprint, error) {
	return &model.Blueprint{ID: id}, nil
}

func (s *stubBlueprints) List(ctx context.Context, limit, offset int) ([]*model.Blueprint, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (s *stubBlueprints) ListByCreator(ctx context.Context, _ string, limit, offset int) ([]*model.Blueprint, error) {
	return s.List(ctx, limit, offset)
}

func (s *stubBlueprints) Delete(_ context.Context, _ string) (bool, error) { return true, nil }

// stubSamples implements SamplesService for handler tests.
type stubSamples struct {
	uploadFunc func(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]*model.SampleSet, error)
}

func (s *stubSamples) Upload(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error) {
	if s.uploadFunc != nil {
		return s.uploadFunc(ctx, req)
	}
	return &model.SampleSet{ID: "set-1", Name: req.Name}, nil
}

func (s *stubSamples) GetByID(_ context.Context, id string) (*model.SampleSet, error) {
	return &model.SampleSet{ID: id}, nil
}

func (s *stubSamples) List(ctx context.Context, limit, offset int) ([]*model.SampleSet, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (s *stubSamples) Delete(_ context.Context, _ string) (bool, error) { return true, nil }

// newTestRenderer loads the real templates from disk.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Fatalf("create template renderer: %v", err)
	}
	return tr
}

// withSession returns a request whose context carries the given session.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

// doBrowserRequest marks the request as coming from a browser.
func doBrowserRequest(handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	BrowserDetection()(handler).ServeHTTP(w, r)
	return w
}
