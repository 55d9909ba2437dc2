// Package errors provides typed error values for fluxvet.
//
// Using sentinel errors allows callers to handle specific error
// conditions programmatically with errors.Is() rather than string
// matching.
//
// # Error Categories
//
//   - Configuration errors: the run was requested with invalid
//     options (ErrMissingKMSKey)
//   - Discovery errors: manifest file discovery issues
//     (ErrNoFilesFound, ErrInvalidPattern)
//   - Tool errors: the external sops binary is unavailable
//     (ErrSopsNotFound)
//
// Structured errors that carry context live next to the code that
// produces them: *manifest.ParseError names the file that failed to
// decode, *sops.ToolError carries the failing invocation, and
// scan.RotationError names the file and the rotation step that
// failed.
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("scanning %s: %w", dir, errors.ErrNoFilesFound)
package errors
