package scan

import (
	"context"
	"fmt"
	"sync"

	logger "github.com/kahusec/fluxvet/internal/logging"
	"github.com/kahusec/fluxvet/internal/manifest"
	"github.com/kahusec/fluxvet/internal/sops"
)

// Rotation steps, used in RotationError to name the failing operation.
const (
	StepDecrypt = "decrypt"
	StepEncrypt = "encrypt"
)

// RotationError reports a file whose rotation failed, and at which
// step. A failure at StepEncrypt means the file was left decrypted on
// disk: rotation does not roll back a successful decrypt, so the
// operator must re-encrypt the file by hand.
type RotationError struct {
	Path string
	Step string
	Err  error
}

func (e RotationError) Error() string {
	return fmt.Sprintf("rotating %s: %s failed: %v", e.Path, e.Step, e.Err)
}

func (e RotationError) Unwrap() error {
	return e.Err
}

// Rotator re-encrypts files under a new KMS key, at most once per
// file. The decision to rotate is discovered per document, but
// rotation itself is a file-level operation: the ledger guarantees a
// file with many encrypted documents is decrypted and re-encrypted
// exactly once.
type Rotator struct {
	tool   sops.Tool
	newARN string
	log    logger.Logger

	mu      sync.Mutex
	rotated PathSet
}

// NewRotator returns a Rotator that rotates files to newARN using tool.
func NewRotator(tool sops.Tool, newARN string, log logger.Logger) *Rotator {
	return &Rotator{
		tool:    tool,
		newARN:  newARN,
		log:     log,
		rotated: PathSet{},
	}
}

// RotateAll processes every file in paths. A parse failure aborts the
// whole run; tool failures are collected per file and never stop the
// remaining files. Returned failures must be surfaced to the operator:
// a half-rotated file is a security-relevant state.
func (r *Rotator) RotateAll(ctx context.Context, paths []string) ([]RotationError, error) {
	var failures []RotationError
	for _, path := range paths {
		docs, err := manifest.ParseFile(path)
		if err != nil {
			return failures, err
		}
		for _, d := range docs {
			if !d.Encrypted() {
				continue
			}
			if !r.markRotated(path) {
				// An earlier document in this file already rotated it.
				continue
			}
			if rerr := r.rotateFile(ctx, path); rerr != nil {
				failures = append(failures, *rerr)
			}
		}
	}
	return failures, nil
}

// rotateFile decrypts then re-encrypts path in place under the new key.
func (r *Rotator) rotateFile(ctx context.Context, path string) *RotationError {
	r.log.Infof("Rotating keys for %s", path)

	if err := r.tool.DecryptInPlace(ctx, path); err != nil {
		return &RotationError{Path: path, Step: StepDecrypt, Err: err}
	}
	if err := r.tool.EncryptInPlace(ctx, path, r.newARN); err != nil {
		return &RotationError{Path: path, Step: StepEncrypt, Err: err}
	}
	return nil
}

// markRotated atomically records path in the ledger, returning false
// if it was already there. The check-and-insert is a single critical
// section so two documents in the same file cannot race to
// double-rotate it.
func (r *Rotator) markRotated(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rotated.Contains(path) {
		return false
	}
	r.rotated.Add(path)
	return true
}
