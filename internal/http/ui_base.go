package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
	"github.com/rabbitt-ai/quizforge/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// BlueprintsService is a minimal interface for UI needs.
type BlueprintsService interface {
	Create(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error)
	GetByID(ctx context.Context, id string) (*model.Blueprint, error)
	List(ctx context.Context, limit, offset int) ([]*model.Blueprint, error)
	ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]*model.Blueprint, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SamplesService is a minimal interface for UI needs.
type SamplesService interface {
	Upload(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error)
	GetByID(ctx context.Context, id string) (*model.SampleSet, error)
	List(ctx context.Context, limit, offset int) ([]*model.SampleSet, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GeneratorService is a minimal interface for the Generate UI.
type GeneratorService interface {
	Generate(ctx context.Context, req *model.GenerateRequest) (*model.QuestionSet, error)
	ExportJSON(set *model.QuestionSet) ([]byte, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ BlueprintsService = (*service.BlueprintService)(nil)
	_ SamplesService    = (*service.SampleService)(nil)
	_ GeneratorService  = (*service.GenerateService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	BlueprintSvc BlueprintsService
	SampleSvc    SamplesService
	GenerateSvc  GeneratorService
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta describes layout metadata shared by all pages.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData constructs the common page data map with user context.
// LandingPath drives the nav's brand/home link so it always targets the
// caller's role landing page.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":           meta.Title,
		"PageTitle":       meta.PageTitle,
		"CurrentPage":     meta.CurrentPage,
		"IsAuthenticated": false,
		"IsAdmin":         false,
		"LandingPath":     "/",
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		data["IsAuthenticated"] = true
		data["IsAdmin"] = session.IsAdmin()
		data["LandingPath"] = domainauth.LandingPath(session.Role)
		data["User"] = map[string]any{
			"Email":       session.Email,
			"DisplayName": session.DisplayName,
			"Role":        string(session.Role),
		}
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, pops any pending flash, optionally fetches
// content data, and renders the full page.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if flash := PopFlash(w, r); flash != nil {
		data["Flash"] = flash
	}

	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().ErrorContext(r.Context(), "page data fetch failed",
				"page", spec.Meta.CurrentPage,
				"error", err,
			)
			data["Error"] = true
			data["ErrorMessage"] = "Failed to load page data"
		}
	}

	h.render(w, r, data)
}

// render writes the full page, falling back to a plain 500 when template
// execution fails.
func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, data any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
