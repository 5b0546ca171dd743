package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/data"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; the
// remainder spills to temp files.
const maxUploadMemory = 1 << 20

func samplesPageMeta() PageMeta {
	return PageMeta{
		Title:       "Sample Sets - QuizForge",
		PageTitle:   "Sample Question Sets",
		CurrentPage: PageSamples,
	}
}

// SamplesPage renders the uploaded sample sets. Any authenticated role can
// view the list; only admins see the upload form.
// GET /samples.
func (h *UIHandlers) SamplesPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: samplesPageMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.fetchSamplesPageData(ctx, r, data)
		},
	})
}

func (h *UIHandlers) fetchSamplesPageData(ctx context.Context, r *http.Request, data map[string]any) error {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)
	samples, err := h.SampleSvc.List(ctx, limit, offset)
	if err != nil {
		return err
	}
	data["Samples"] = samples
	return nil
}

// SampleUpload handles the admin-only multipart upload form.
// POST /samples/upload with fields name and file.
func (h *UIHandlers) SampleUpload(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, domainauth.LoginPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.renderSamplesPageWithError(w, r, map[string]string{"file": "could not read the uploaded file"})
		return
	}

	req := &model.UploadSampleRequest{
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		UploadedBy: session.UserID,
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close() //nolint:errcheck // read-only temp file
		req.FileName = header.Filename
		req.ContentType = header.Header.Get("Content-Type")
		req.SizeBytes = header.Size
	}

	_, err = h.SampleSvc.Upload(r.Context(), req)
	switch {
	case err == nil:
		SetFlash(w, Flash{
			Title:       "Sample Set Uploaded",
			Description: req.Name + " is now available",
		})
		http.Redirect(w, r, domainauth.SamplesPath, http.StatusSeeOther)

	case errors.Is(err, data.ErrSampleNameExists):
		h.renderSamplesPageWithError(w, r, map[string]string{"name": "a sample set with this name already exists"})

	case apperrors.IsValidation(err):
		h.renderSamplesPageWithError(w, r, map[string]string{apperrors.GetField(err): err.Error()})

	default:
		h.logger().ErrorContext(r.Context(), "sample upload failed", "error", err)
		h.renderSamplesPageWithError(w, r, nil)
	}
}

func (h *UIHandlers) renderSamplesPageWithError(w http.ResponseWriter, r *http.Request, fieldErrs map[string]string) {
	msg := errMsgFixBelow
	if len(fieldErrs) == 0 {
		msg = "Failed to upload sample set"
	}

	pageData := NewTemplateData(r, samplesPageMeta()).
		WithError(msg).
		WithFieldErrors(fieldErrs).
		Build()

	if err := h.fetchSamplesPageData(r.Context(), r, pageData); err != nil {
		h.logger().ErrorContext(r.Context(), "sample list fetch failed", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, pageData)
}
