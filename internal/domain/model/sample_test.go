package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/rabbitt-ai/quizforge/internal/errors"
)

func validUploadRequest() UploadSampleRequest {
	return UploadSampleRequest{
		Name:        "Baseline Set",
		FileName:    "questions.csv",
		ContentType: "text/csv",
		SizeBytes:   2048,
	}
}

func TestUploadSampleRequest_Validate(t *testing.T) {
	req := validUploadRequest()
	assert.NoError(t, req.Validate())
}

func TestUploadSampleRequest_Validate_Name(t *testing.T) {
	req := validUploadRequest()
	req.Name = ""
	err := req.Validate()
	assert.Error(t, err)
	assert.Equal(t, "name", apperrors.GetField(err))
}

func TestUploadSampleRequest_Validate_File(t *testing.T) {
	req := validUploadRequest()
	req.FileName = ""
	assert.Error(t, req.Validate())

	req = validUploadRequest()
	req.ContentType = "application/zip"
	assert.Error(t, req.Validate())

	req = validUploadRequest()
	req.ContentType = "Text/CSV"
	assert.NoError(t, req.Validate())

	req = validUploadRequest()
	req.SizeBytes = 0
	assert.Error(t, req.Validate())

	req = validUploadRequest()
	req.SizeBytes = maxSampleFileBytes + 1
	assert.Error(t, req.Validate())
}

func TestGenerateRequest_Validate(t *testing.T) {
	req := GenerateRequest{Topic: "Physics", QuestionCount: 10}
	assert.NoError(t, req.Validate())

	req = GenerateRequest{Topic: "", QuestionCount: 10}
	err := req.Validate()
	assert.Error(t, err)
	assert.Equal(t, "topic", apperrors.GetField(err))

	for _, count := range []int{0, 51} {
		req = GenerateRequest{Topic: "Physics", QuestionCount: count}
		assert.Error(t, req.Validate(), "count %d should fail", count)
	}
}
