package core

import (
	"context"

	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// BlueprintRepository defines the interface for blueprint data operations.
type BlueprintRepository interface {
	Create(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error)
	GetByID(ctx context.Context, id string) (*model.Blueprint, error)
	List(ctx context.Context, limit, offset int) ([]*model.Blueprint, error)
	ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]*model.Blueprint, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SampleRepository defines the interface for sample set data operations.
type SampleRepository interface {
	Create(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error)
	GetByID(ctx context.Context, id string) (*model.SampleSet, error)
	List(ctx context.Context, limit, offset int) ([]*model.SampleSet, error)
	Delete(ctx context.Context, id string) (bool, error)
}
