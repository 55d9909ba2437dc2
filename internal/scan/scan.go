package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	kerrors "github.com/kahusec/fluxvet/internal/errors"
	logger "github.com/kahusec/fluxvet/internal/logging"
	"github.com/kahusec/fluxvet/internal/sops"
)

// Options configures a scan run.
type Options struct {
	// Paths is the list of manifest files to analyze, produced by the
	// discovery layer.
	Paths []string

	// Rotate enables the rotation pass after the read-only passes.
	Rotate bool

	// NewKeyARN is the target KMS key for rotation. Required when
	// Rotate is set.
	NewKeyARN string

	// Tool runs the external sops binary. Required when Rotate is set.
	Tool sops.Tool

	Logger logger.Logger
}

// Report is the merged, immutable outcome of a run.
type Report struct {
	// KeyUsage maps every KMS key ARN seen in the tree to the files
	// referencing it. When rotation ran, this reflects pre-rotation
	// keys: rotation starts only after the read-only passes finish.
	KeyUsage KeyUsage

	// Duplicates holds only identity groups spanning two or more files.
	Duplicates DuplicateGroups

	// RotationFailures lists every file whose rotation failed, with
	// the failing step. Empty on scan-only runs.
	RotationFailures []RotationError
}

// Run executes the key aggregation and duplicate detection passes
// concurrently over the same file list, then rotation if requested.
// Each pass parses every file independently. Fails fast with
// ErrMissingKMSKey if rotation is requested without a target key.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Rotate {
		if opts.NewKeyARN == "" {
			return nil, kerrors.ErrMissingKMSKey
		}
		if opts.Tool == nil {
			return nil, kerrors.ErrMissingTool
		}
	}

	var (
		usage  KeyUsage
		groups DuplicateGroups
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		usage, err = CollectKeyUsage(opts.Paths)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = CollectDuplicates(opts.Paths)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		KeyUsage:   usage,
		Duplicates: groups.Duplicated(),
	}

	// Rotation rewrites files in place, so it must not overlap the
	// read-only passes; it starts only once both have completed.
	if opts.Rotate {
		rotator := NewRotator(opts.Tool, opts.NewKeyARN, opts.Logger)
		failures, err := rotator.RotateAll(ctx, opts.Paths)
		if err != nil {
			return nil, err
		}
		report.RotationFailures = failures
	}

	return report, nil
}
