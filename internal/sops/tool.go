package sops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/kahusec/fluxvet/internal/errors"
)

// Tool is the narrow contract fluxvet needs from the external
// encryption tool. Both operations rewrite the file in place and are
// treated as atomic from this system's point of view.
type Tool interface {
	// DecryptInPlace decrypts the file at path, overwriting it.
	DecryptInPlace(ctx context.Context, path string) error

	// EncryptInPlace encrypts the file at path under keyARN, overwriting it.
	EncryptInPlace(ctx context.Context, path string, keyARN string) error
}

// ToolError reports a failed invocation of the sops binary.
type ToolError struct {
	Path   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("sops %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
	}
	return fmt.Sprintf("sops %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// CLI runs the sops binary as a subprocess.
type CLI struct {
	// Binary is the sops executable name or path.
	Binary string
}

// NewCLI returns a CLI using the given binary, defaulting to "sops".
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "sops"
	}
	return &CLI{Binary: binary}
}

func (c *CLI) DecryptInPlace(ctx context.Context, path string) error {
	return c.run(ctx, path, "-d", "-i", path)
}

func (c *CLI) EncryptInPlace(ctx context.Context, path string, keyARN string) error {
	return c.run(ctx, path, "-e", "-i", "-k", keyARN, path)
}

func (c *CLI) run(ctx context.Context, path string, args ...string) error {
	cmd := exec.CommandContext(ctx, c.Binary, args...) // #nosec G204 -- args are fixed flags plus scanned file paths.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %q", kerrors.ErrSopsNotFound, c.Binary)
		}
		return &ToolError{
			Path:   path,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
