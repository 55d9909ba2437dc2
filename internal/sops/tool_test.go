package sops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	kerrors "github.com/kahusec/fluxvet/internal/errors"
)

// writeFakeSops writes an executable shell script standing in for the
// sops binary. It records its arguments to argsFile and exits with the
// given code.
func writeFakeSops(t *testing.T, dir, argsFile string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake sops script requires a POSIX shell")
	}

	script := "#!/bin/sh\necho \"$@\" >> \"" + argsFile + "\"\n"
	if exitCode != 0 {
		script += "echo \"sops: key unavailable\" >&2\n"
	}
	script += "exit " + strconv.Itoa(exitCode) + "\n"

	path := filepath.Join(dir, "sops")
	if err := os.WriteFile(path, []byte(script), 0700); err != nil { // #nosec G306
		t.Fatalf("Failed to write fake sops: %v", err)
	}
	return path
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile) // #nosec G304
	if err != nil {
		t.Fatalf("Failed to read recorded args: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestCLI_DecryptInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.log")
	binary := writeFakeSops(t, tmpDir, argsFile, 0)

	cli := NewCLI(binary)
	if err := cli.DecryptInPlace(context.Background(), "a-sops.yml"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	args := recordedArgs(t, argsFile)
	if len(args) != 1 || args[0] != "-d -i a-sops.yml" {
		t.Errorf("Unexpected sops invocation: %v", args)
	}
}

func TestCLI_EncryptInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.log")
	binary := writeFakeSops(t, tmpDir, argsFile, 0)

	cli := NewCLI(binary)
	if err := cli.EncryptInPlace(context.Background(), "a-sops.yml", "arn:aws:kms:new"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	args := recordedArgs(t, argsFile)
	if len(args) != 1 || args[0] != "-e -i -k arn:aws:kms:new a-sops.yml" {
		t.Errorf("Unexpected sops invocation: %v", args)
	}
}

func TestCLI_FailureCarriesStderr(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.log")
	binary := writeFakeSops(t, tmpDir, argsFile, 1)

	cli := NewCLI(binary)
	err := cli.DecryptInPlace(context.Background(), "a-sops.yml")
	if err == nil {
		t.Fatal("Expected an error from a failing tool")
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("Expected a *ToolError, got: %T", err)
	}
	if toolErr.Path != "a-sops.yml" {
		t.Errorf("Expected error to name the file, got: %s", toolErr.Path)
	}
	if !strings.Contains(toolErr.Stderr, "key unavailable") {
		t.Errorf("Expected stderr to be captured, got: %q", toolErr.Stderr)
	}
}

func TestCLI_MissingBinary(t *testing.T) {
	cli := NewCLI("fluxvet-test-missing-binary")
	err := cli.DecryptInPlace(context.Background(), "a-sops.yml")
	if !errors.Is(err, kerrors.ErrSopsNotFound) {
		t.Fatalf("Expected ErrSopsNotFound, got: %v", err)
	}
}

func TestNewCLI_DefaultsBinary(t *testing.T) {
	if NewCLI("").Binary != "sops" {
		t.Error("Expected the binary to default to sops")
	}
}
