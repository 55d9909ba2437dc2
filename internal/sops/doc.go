// Package sops abstracts the external sops binary behind a two-method
// interface so the rotation coordinator is testable with a fake.
//
// The tool owns all cryptography; fluxvet never touches key material
// itself. Failures carry the invocation and the tool's stderr so a
// half-rotated file can be diagnosed immediately.
package sops
