package errors

import "errors"

// Configuration errors indicate the run was requested with invalid options.
var (
	// ErrMissingKMSKey indicates rotation was requested without a target KMS key ARN.
	ErrMissingKMSKey = errors.New("rotation requested without a KMS key ARN")

	// ErrMissingTool indicates rotation was requested without a sops tool to run it with.
	ErrMissingTool = errors.New("rotation requested without an encryption tool")
)

// Discovery errors indicate issues with manifest file discovery.
var (
	// ErrNoFilesFound indicates no files matched the manifest glob pattern.
	ErrNoFilesFound = errors.New("no matching manifest files found")

	// ErrInvalidPattern indicates the manifest glob pattern is malformed.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// Tool errors indicate failures of the external sops binary.
var (
	// ErrSopsNotFound indicates the sops binary could not be located on PATH.
	ErrSopsNotFound = errors.New("sops binary not found")
)
