package fileio

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/pkg/outcome"
)

// ReadFile reads the whole file at path into memory.
func ReadFile(ctx context.Context, path string) outcome.Result[[]byte] {
	if err := ctx.Err(); err != nil {
		return outcome.Fail[[]byte](errs.Wrap(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return outcome.Fail[[]byte](ErrRead{Path: path, Cause: err})
	}
	return outcome.Success(data)
}

// ReadText reads the file at path as a string.
func ReadText(ctx context.Context, path string) outcome.Result[string] {
	return outcome.AndThen(ReadFile(ctx, path), func(data []byte) outcome.Result[string] {
		return outcome.Success(string(data))
	})
}

// ReadLines reads the file at path and splits it into lines. The trailing
// newline, if any, does not produce an empty last line.
func ReadLines(ctx context.Context, path string) outcome.Result[[]string] {
	return outcome.AndThen(ReadText(ctx, path), func(text string) outcome.Result[[]string] {
		text = strings.TrimSuffix(text, "\n")
		if text == "" {
			return outcome.Success([]string{})
		}
		return outcome.Success(strings.Split(text, "\n"))
	})
}

// Stat returns the file info for path.
func Stat(ctx context.Context, path string) outcome.Result[fs.FileInfo] {
	if err := ctx.Err(); err != nil {
		return outcome.Fail[fs.FileInfo](errs.Wrap(err))
	}

	info, err := os.Stat(path)
	if err != nil {
		return outcome.Fail[fs.FileInfo](ErrStat{Path: path, Cause: err})
	}
	return outcome.Success(info)
}

// WriteFile writes data to path with the given permissions, creating the
// file if it does not exist and truncating it otherwise. On success the
// Result carries the number of bytes written.
func WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) outcome.Result[int] {
	if err := ctx.Err(); err != nil {
		return outcome.Fail[int](errs.Wrap(err))
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return outcome.Fail[int](ErrWrite{Path: path, Cause: err})
	}
	return outcome.Success(len(data))
}
