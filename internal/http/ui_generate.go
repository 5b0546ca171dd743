package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rabbitt-ai/quizforge/internal/domain/model"
	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

func generatePageMeta() PageMeta {
	return PageMeta{
		Title:       "Generate - QuizForge",
		PageTitle:   "Generate Questions",
		CurrentPage: PageGenerate,
	}
}

// GeneratePage renders the generation form.
// GET /generate.
func (h *UIHandlers) GeneratePage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: generatePageMeta(),
		Fetch: func(_ context.Context, data map[string]any) error {
			addGenerateFormDefaults(data)
			return nil
		},
	})
}

func addGenerateFormDefaults(data map[string]any) {
	data["Topics"] = model.GenerationTopics
	if _, ok := data["Form"]; !ok {
		data["Form"] = map[string]any{
			"Topic":         "",
			"QuestionCount": 10,
		}
	}
}

// GenerateQuestions runs a generation and renders the preview inline.
// POST /generate.
func (h *UIHandlers) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	req, ok := h.generateRequestFromForm(w, r)
	if !ok {
		return
	}

	set, err := h.GenerateSvc.Generate(r.Context(), req)
	if err != nil {
		h.renderGeneratePageWithError(w, r, req, err)
		return
	}

	data := NewTemplateData(r, generatePageMeta()).
		With("Form", map[string]any{
			"Topic":         req.Topic,
			"QuestionCount": req.QuestionCount,
		}).
		With("Preview", set).
		Build()
	addGenerateFormDefaults(data)

	h.render(w, r, data)
}

// GenerateExport runs a generation and serves the result as a JSON download.
// POST /generate/export.
func (h *UIHandlers) GenerateExport(w http.ResponseWriter, r *http.Request) {
	req, ok := h.generateRequestFromForm(w, r)
	if !ok {
		return
	}

	set, err := h.GenerateSvc.Generate(r.Context(), req)
	if err != nil {
		h.renderGeneratePageWithError(w, r, req, err)
		return
	}

	payload, err := h.GenerateSvc.ExportJSON(set)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "question export failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "export_failed", Err: err})
		return
	}

	filename := "questions-" + slugify(set.Topic) + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(payload); err != nil {
		h.logger().ErrorContext(r.Context(), "failed to write export", "error", err)
	}
}

func (h *UIHandlers) generateRequestFromForm(w http.ResponseWriter, r *http.Request) (*model.GenerateRequest, bool) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return nil, false
	}

	fieldErrs := map[string]string{}
	req := &model.GenerateRequest{
		Topic:         strings.TrimSpace(r.PostFormValue("topic")),
		QuestionCount: parseIntField(r, "question_count", fieldErrs),
	}
	if len(fieldErrs) > 0 {
		h.renderGeneratePageWithFieldErrors(w, r, req, fieldErrs)
		return nil, false
	}
	return req, true
}

func (h *UIHandlers) renderGeneratePageWithError(w http.ResponseWriter, r *http.Request, req *model.GenerateRequest, err error) {
	if apperrors.IsValidation(err) {
		h.renderGeneratePageWithFieldErrors(w, r, req, map[string]string{apperrors.GetField(err): err.Error()})
		return
	}

	h.logger().ErrorContext(r.Context(), "question generation failed", "error", err)
	data := NewTemplateData(r, generatePageMeta()).
		WithError("Failed to generate questions").
		Build()
	addGenerateFormDefaults(data)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	h.render(w, r, data)
}

func (h *UIHandlers) renderGeneratePageWithFieldErrors(
	w http.ResponseWriter,
	r *http.Request,
	req *model.GenerateRequest,
	fieldErrs map[string]string,
) {
	data := NewTemplateData(r, generatePageMeta()).
		WithError(errMsgFixBelow).
		WithFieldErrors(fieldErrs).
		With("Form", map[string]any{
			"Topic":         req.Topic,
			"QuestionCount": req.QuestionCount,
		}).
		Build()
	addGenerateFormDefaults(data)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, data)
}

// slugify turns a topic into a filesystem-friendly filename fragment.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return url.PathEscape(s)
}
