package service

import (
	"context"

	"github.com/rabbitt-ai/quizforge/internal/core"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// BlueprintServiceOptions groups dependencies for BlueprintService.
type BlueprintServiceOptions struct {
	Blueprints core.BlueprintRepository
}

// BlueprintService orchestrates assessment blueprint CRUD.
type BlueprintService struct {
	blueprints core.BlueprintRepository
}

// NewBlueprintService constructs a new BlueprintService.
func NewBlueprintService(opts BlueprintServiceOptions) *BlueprintService {
	return &BlueprintService{blueprints: opts.Blueprints}
}

// Create validates and persists a new blueprint.
func (s *BlueprintService) Create(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error) {
	return s.blueprints.Create(ctx, req)
}

// GetByID retrieves a blueprint by ID.
func (s *BlueprintService) GetByID(ctx context.Context, id string) (*model.Blueprint, error) {
	return s.blueprints.GetByID(ctx, id)
}

// List returns a page of blueprints, newest first.
func (s *BlueprintService) List(ctx context.Context, limit, offset int) ([]*model.Blueprint, error) {
	return s.blueprints.List(ctx, limit, offset)
}

// ListByCreator returns a page of blueprints created by the given user.
func (s *BlueprintService) ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]*model.Blueprint, error) {
	return s.blueprints.ListByCreator(ctx, createdBy, limit, offset)
}

// Delete removes a blueprint by ID.
func (s *BlueprintService) Delete(ctx context.Context, id string) (bool, error) {
	return s.blueprints.Delete(ctx, id)
}
