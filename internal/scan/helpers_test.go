package scan

import (
	"os"
	"path/filepath"
	"testing"
)

// deploymentYAML renders one encrypted deployment document.
func deploymentYAML(name, namespace, arn string) string {
	doc := "kind: Deployment\nmetadata:\n  name: " + name + "\n"
	if namespace != "" {
		doc += "  namespace: " + namespace + "\n"
	}
	if arn != "" {
		doc += "sops:\n  kms:\n    - arn: \"" + arn + "\"\n"
	}
	return doc
}

// writeManifest writes a manifest file into dir and returns its path.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test manifest: %v", err)
	}
	return path
}
