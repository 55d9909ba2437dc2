// Package audit records a JSONL trail of fluxvet runs in the user
// config directory. Rotation in particular rewrites files in place,
// so a record of what ran, against which directory, and what failed
// is kept even when console output is gone.
//
// Auditing is best-effort by design: a run never fails because the
// audit log could not be written.
package audit
