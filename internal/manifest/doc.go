// Package manifest models the slice of a Kubernetes manifest that
// fluxvet cares about: kind, metadata, and SOPS encryption metadata.
//
// A manifest file may hold multiple `---`-separated YAML documents;
// Parse decodes all of them. Document.Identity() is the canonical
// comparison key used for duplicate detection across files.
package manifest
