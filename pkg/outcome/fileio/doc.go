// Package fileio contains example collaborators that perform real file
// access and report through Results instead of raising. Each helper
// checks the context before touching the filesystem and wraps operating
// system failures in typed errors, so callers can branch on the error
// kind with errors.As while still getting a readable message.
//
// The package is deliberately thin: it produces and consumes Results and
// adds nothing to the evaluation rules of the core.
package fileio
