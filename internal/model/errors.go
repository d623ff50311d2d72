package model

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) so handlers can map them to status codes
// with errors.Is.
var (
	// ErrValidation marks a request missing required fields or using an
	// unknown root label.
	ErrValidation = errors.New("invalid request")

	// ErrForbiddenPath marks a path that resolves outside its root
	// directory (".." segments, absolute paths).
	ErrForbiddenPath = errors.New("path escapes root directory")

	// ErrNotFound marks an operation whose target file is absent.
	ErrNotFound = errors.New("file not found")

	// ErrMetadataWrite marks a tag-encoding or tag-persisting failure
	// during save. A save that hits it must not be reported as success.
	ErrMetadataWrite = errors.New("failed to write metadata")
)
