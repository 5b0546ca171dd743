package model

import (
	"strings"
	"time"

	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

const (
	maxSampleNameLen = 255
	// maxSampleFileBytes caps uploaded sample documents at 5 MiB.
	maxSampleFileBytes = 5 << 20
)

// sampleContentTypes lists the upload formats the samples page accepts.
var sampleContentTypes = map[string]bool{
	"text/plain":       true,
	"text/csv":         true,
	"application/pdf":  true,
	"application/json": true,
}

// SampleSet is an uploaded reference document that generated questions can
// be styled after.
type SampleSet struct {
	ID          string    `json:"id"           db:"id"`
	Name        string    `json:"name"         db:"name"`
	FileName    string    `json:"file_name"    db:"file_name"`
	ContentType string    `json:"content_type" db:"content_type"`
	SizeBytes   int64     `json:"size_bytes"   db:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by"  db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// UploadSampleRequest represents parameters to register an uploaded sample set.
type UploadSampleRequest struct {
	Name        string `json:"name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedBy  string `json:"-"`
}

// Validate validates UploadSampleRequest.
func (r *UploadSampleRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if len(name) > maxSampleNameLen {
		return apperrors.ValidationField("name", "name is too long")
	}
	if strings.TrimSpace(r.FileName) == "" {
		return apperrors.ValidationField("file", "a file must be selected")
	}
	if !sampleContentTypes[strings.ToLower(strings.TrimSpace(r.ContentType))] {
		return apperrors.ValidationField("file", "unsupported file type")
	}
	if r.SizeBytes <= 0 {
		return apperrors.ValidationField("file", "file is empty")
	}
	if r.SizeBytes > maxSampleFileBytes {
		return apperrors.ValidationField("file", "file exceeds the 5 MB limit")
	}
	return nil
}
