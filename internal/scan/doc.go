// Package scan implements the analysis passes fluxvet runs over a
// manifest tree: KMS key usage aggregation, duplicate document
// detection, and key rotation coordination.
//
// Each pass is a pure function over an input file list that returns
// its own aggregation value; the orchestrator merges them into a
// Report. The passes have no data dependency on each other, so the
// read-only ones run concurrently. Rotation rewrites files and runs
// strictly after both read-only passes complete, with an internal
// ledger enforcing at-most-once rotation per file.
package scan
