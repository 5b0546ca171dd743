package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// blueprintPageMeta is shared by the GET render and the POST re-render.
func blueprintPageMeta() PageMeta {
	return PageMeta{
		Title:       "Blueprints - QuizForge",
		PageTitle:   "Assessment Blueprints",
		CurrentPage: PageBlueprint,
	}
}

// BlueprintPage renders the blueprint form and the caller's existing blueprints.
// GET /blueprint.
func (h *UIHandlers) BlueprintPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: blueprintPageMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.fetchBlueprintPageData(ctx, r, data)
		},
	})
}

func (h *UIHandlers) fetchBlueprintPageData(ctx context.Context, r *http.Request, data map[string]any) error {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	var (
		blueprints []*model.Blueprint
		err        error
	)
	if session := GetSessionFromContext(ctx); session != nil && !session.IsAdmin() {
		blueprints, err = h.BlueprintSvc.ListByCreator(ctx, session.UserID, limit, offset)
	} else {
		blueprints, err = h.BlueprintSvc.List(ctx, limit, offset)
	}
	if err != nil {
		return err
	}

	data["Blueprints"] = blueprints
	ensureBlueprintFormDefaults(data)
	return nil
}

// ensureBlueprintFormDefaults fills form state that the template always needs,
// without clobbering values a failed submission already set.
func ensureBlueprintFormDefaults(data map[string]any) {
	if _, ok := data["Form"]; !ok {
		data["Form"] = map[string]any{
			"Topic":         "",
			"QuestionCount": 10,
			"Experience":    string(model.ExperienceIntermediate),
			"Distribution":  model.DefaultDifficultyDistribution(),
		}
	}
	data["ExperienceLevels"] = []model.ExperienceLevel{
		model.ExperienceBeginner,
		model.ExperienceIntermediate,
		model.ExperienceAdvanced,
		model.ExperienceExpert,
	}
}

// BlueprintCreate handles the blueprint form submission.
// POST /blueprint.
func (h *UIHandlers) BlueprintCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	session := GetSessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, domainauth.LoginPath, http.StatusSeeOther)
		return
	}

	req, fieldErrs := blueprintRequestFromForm(r, session.UserID)
	if len(fieldErrs) == 0 {
		if _, err := h.BlueprintSvc.Create(r.Context(), req); err != nil {
			if apperrors.IsValidation(err) {
				fieldErrs = map[string]string{apperrors.GetField(err): err.Error()}
			} else {
				h.logger().ErrorContext(r.Context(), "blueprint create failed", "error", err)
				h.renderBlueprintPageWithError(w, r, req, nil, "Failed to create blueprint")
				return
			}
		}
	}

	if len(fieldErrs) > 0 {
		h.renderBlueprintPageWithError(w, r, req, fieldErrs, errMsgFixBelow)
		return
	}

	SetFlash(w, Flash{
		Title:       "Blueprint Created",
		Description: "Blueprint for " + req.Topic + " has been saved",
	})
	http.Redirect(w, r, domainauth.BlueprintPath, http.StatusSeeOther)
}

// blueprintRequestFromForm builds a create request from submitted form values.
// Numeric parse failures are reported as field errors; everything else is
// left to request validation.
func blueprintRequestFromForm(r *http.Request, createdBy string) (*model.CreateBlueprintRequest, map[string]string) {
	fieldErrs := map[string]string{}

	req := &model.CreateBlueprintRequest{
		Topic:     strings.TrimSpace(r.PostFormValue("topic")),
		CreatedBy: createdBy,
	}

	if desc := strings.TrimSpace(r.PostFormValue("job_description")); desc != "" {
		req.JobDescription = &desc
	}

	req.QuestionCount = parseIntField(r, "question_count", fieldErrs)
	req.Distribution = model.DifficultyDistribution{
		Easy:   parseIntField(r, "easy", fieldErrs),
		Medium: parseIntField(r, "medium", fieldErrs),
		Hard:   parseIntField(r, "hard", fieldErrs),
	}

	if level, ok := model.ParseExperienceLevel(r.PostFormValue("experience")); ok {
		req.Experience = level
	} else {
		fieldErrs["experience"] = "unknown experience level"
	}

	return req, fieldErrs
}

func parseIntField(r *http.Request, key string, fieldErrs map[string]string) int {
	raw := strings.TrimSpace(r.PostFormValue(key))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrs[key] = "must be a whole number"
		return 0
	}
	return n
}

// renderBlueprintPageWithError re-renders the blueprint page preserving the
// submitted form values alongside the errors.
func (h *UIHandlers) renderBlueprintPageWithError(
	w http.ResponseWriter,
	r *http.Request,
	req *model.CreateBlueprintRequest,
	fieldErrs map[string]string,
	msg string,
) {
	builder := NewTemplateData(r, blueprintPageMeta()).
		WithError(msg).
		WithFieldErrors(fieldErrs).
		With("Form", map[string]any{
			"Topic":          req.Topic,
			"JobDescription": req.JobDescription,
			"QuestionCount":  req.QuestionCount,
			"Experience":     string(req.Experience),
			"Distribution":   req.Distribution,
		})

	data := builder.Build()
	ensureBlueprintFormDefaults(data)

	if err := h.fetchBlueprintPageData(r.Context(), r, data); err != nil {
		h.logger().ErrorContext(r.Context(), "blueprint list fetch failed", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, data)
}
