package service

import (
	"context"

	"github.com/rabbitt-ai/quizforge/internal/core"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// SampleServiceOptions groups dependencies for SampleService.
type SampleServiceOptions struct {
	Samples core.SampleRepository
}

// SampleService orchestrates uploaded sample set management.
type SampleService struct {
	samples core.SampleRepository
}

// NewSampleService constructs a new SampleService.
func NewSampleService(opts SampleServiceOptions) *SampleService {
	return &SampleService{samples: opts.Samples}
}

// Upload validates and registers an uploaded sample set.
func (s *SampleService) Upload(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error) {
	return s.samples.Create(ctx, req)
}

// GetByID retrieves a sample set by ID.
func (s *SampleService) GetByID(ctx context.Context, id string) (*model.SampleSet, error) {
	return s.samples.GetByID(ctx, id)
}

// List returns a page of sample sets, newest first.
func (s *SampleService) List(ctx context.Context, limit, offset int) ([]*model.SampleSet, error) {
	return s.samples.List(ctx, limit, offset)
}

// Delete removes a sample set by ID.
func (s *SampleService) Delete(ctx context.Context, id string) (bool, error) {
	return s.samples.Delete(ctx, id)
}
