// Package bridge is the validating entry point in front of the numeric
// packages.
//
// Callers outside the module (a CLI, an embedding host, a scripting layer)
// hand over raw slices. bridge checks them once and reports failure as a NaN
// distance plus an error-level log line naming the reason, so the inner
// packages can stay check-free. ValidateWasserstein1 exposes the same checks
// as a Go error for callers that prefer errors.Is.
package bridge
