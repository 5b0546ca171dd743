package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrBlueprintNotFound is returned when a blueprint is not found.
	ErrBlueprintNotFound = errors.New("blueprint not found")

	// ErrSampleNotFound is returned when a sample set is not found.
	ErrSampleNotFound = errors.New("sample set not found")
	// ErrSampleNameExists is returned when a sample set with the same name already exists.
	ErrSampleNameExists = errors.New("sample set name already exists")
)
