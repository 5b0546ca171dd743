// Package mocks provides mock implementations for testing quizforge services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockBlueprintRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bp, nil)
package mocks

// Generate mock for BlueprintRepository interface from internal/core package.
// This creates MockBlueprintRepository with methods for all BlueprintRepository interface methods:
// Create, GetByID, List, ListByCreator, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=blueprint_repository_mock.go github.com/rabbitt-ai/quizforge/internal/core BlueprintRepository

// Generate mock for SampleRepository interface from internal/core package.
// This creates MockSampleRepository with methods for all SampleRepository interface methods:
// Create, GetByID, List, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=sample_repository_mock.go github.com/rabbitt-ai/quizforge/internal/core SampleRepository
