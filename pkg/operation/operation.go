// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package operation provides the rewrite and line counting operations
package operation

import (
	"context"
	"io/fs"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the Runner executes
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation to completion or to the first error
	Execute(ctx context.Context) error
}

// 📢 RewriteProgress is notified after each file is rewritten
type RewriteProgress interface {
	WorkingOn(path string, replacements int)
}

// 📢 CountProgress is notified after each file is counted
type CountProgress interface {
	FoundLines(path string, lines int)
}

// ErrIO matches every FileError
var ErrIO = errors.Base("file i/o failed")

// 🚨 FileError reports a file that could not be read or written
type FileError struct {
	Path string // File being processed
	Op   string // "read" or "write"
	Err  error  // Underlying os error
}

func (e *FileError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap exposes both ErrIO and the underlying error to errors.Is
func (e *FileError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// checkContext stops a run between files once ctx is done
func checkContext(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("stopping before %s: %w", path, err)
	}
	return nil
}
