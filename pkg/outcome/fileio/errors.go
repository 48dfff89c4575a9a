package fileio

import "fmt"

// ErrRead reports a failed read of a file.
type ErrRead struct {
	Path  string
	Cause error
}

func (e ErrRead) Error() string {
	return fmt.Sprintf("fileio: read %s: %s", e.Path, e.Cause)
}

func (e ErrRead) Unwrap() error {
	return e.Cause
}

// ErrStat reports a failed stat of a path.
type ErrStat struct {
	Path  string
	Cause error
}

func (e ErrStat) Error() string {
	return fmt.Sprintf("fileio: stat %s: %s", e.Path, e.Cause)
}

func (e ErrStat) Unwrap() error {
	return e.Cause
}

// ErrWrite reports a failed write to a file.
type ErrWrite struct {
	Path  string
	Cause error
}

func (e ErrWrite) Error() string {
	return fmt.Sprintf("fileio: write %s: %s", e.Path, e.Cause)
}

func (e ErrWrite) Unwrap() error {
	return e.Cause
}
